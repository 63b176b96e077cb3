// Copyright 2026 The Piglet Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emit

import (
	"io"
	"text/template"

	"github.com/escalante-bio/piglet-codegen/ir"
)

const manifestTemplate = `{{.Header}}
// Package {{.Package}} is the generated client library for the introspected
// device. GeneratedModules lists every module file generated in this run,
// in Module Builder encounter order.
package {{.Package}}

var GeneratedModules = []string{
{{range .Files}}	"{{.}}",
{{end}}}
`

var manifestTmpl = template.Must(template.New("manifest").Parse(manifestTemplate))

// Manifest writes the top-level index file listing every generated module's
// filename. Since every generated file already shares one flat package, the
// index's job is discoverability rather than declaration.
func Manifest(w io.Writer, pkgName string, modules []*ir.GeneratedModule) error {
	files := make([]string, len(modules))
	for i, m := range modules {
		files[i] = FileName(m.Name)
	}
	return manifestTmpl.Execute(w, struct {
		Header  string
		Package string
		Files   []string
	}{Header: Header, Package: pkgName, Files: files})
}
