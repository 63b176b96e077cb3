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

// Package emit renders one ir.GeneratedModule into a single Go source file
// via text/template: imports, object struct, constructors, methods (each
// method's reply struct, if it has one, directly precedes the method), enum
// definitions, struct definitions, and the trailing unknown-object comment,
// in that order. It also writes the top-level index file listing every
// generated module.
package emit

import (
	"fmt"
	"io"
	"text/template"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/names"
)

// Header is the standard generated-file banner applied verbatim to every
// emitted file so tooling knows to skip them.
const Header = "// Code generated by piglet-codegen. DO NOT EDIT.\n"

const moduleTemplate = `{{.Header}}
package {{.Package}}

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/escalante-bio/piglet-codegen/schema"
	"github.com/escalante-bio/piglet-codegen/transport"
	"github.com/escalante-bio/piglet-codegen/wire"
)

// Reference imports to suppress errors if they are not otherwise used.
var (
	_ = bytes.NewReader
	_ = context.Background
	_ = fmt.Sprintf
	_ = io.EOF
	_ = wire.TypeStruct
)

// version {{.Version}}
type {{.Name}} struct {
	Address schema.ObjectAddress
	Client  transport.Client
}

{{.Constructors}}
{{range .Methods}}
{{.}}
{{end}}
{{range .Enums}}
{{.}}
{{end}}
{{range .Structs}}
{{.}}
{{end}}
{{if .Unknown}}// {{.Name}} was not present on the dumping machine.
{{end}}`

var tmpl = template.Must(template.New("module").Parse(moduleTemplate))

type templateData struct {
	Header       string
	Package      string
	Name         string
	Version      string
	Constructors string
	Methods      []string
	Enums        []string
	Structs      []string
	Unknown      bool
}

// Module renders m into w as a complete Go source file. pkgName is the
// package every generated module shares: all files for one run live in one
// flat package, so generated types reference each other without imports.
func Module(w io.Writer, m *ir.GeneratedModule, pkgName string) error {
	data := templateData{
		Header:       Header,
		Package:      pkgName,
		Name:         m.Name,
		Version:      m.Version,
		Constructors: renderConstructors(m),
		Unknown:      m.Unknown,
	}
	for _, method := range m.Methods {
		data.Methods = append(data.Methods, renderMethod(m.Name, method))
	}
	for _, e := range m.Enums {
		data.Enums = append(data.Enums, renderEnum(e))
	}
	for _, s := range m.Structs {
		data.Structs = append(data.Structs, renderStruct(s))
	}
	return tmpl.Execute(w, data)
}

// renderConstructors emits one New<Module>(client) for a single address, or
// New<Module>_1 .. New<Module>_n preserving insertion order when the module
// was produced by address aggregation, each hard-coding its address triple.
func renderConstructors(m *ir.GeneratedModule) string {
	if len(m.Addresses) == 1 {
		a := m.Addresses[0]
		return fmt.Sprintf(`func New%s(client transport.Client) *%s {
	return &%s{Address: schema.ObjectAddress{ModuleID: %d, NodeID: %d, ObjectID: %d}, Client: client}
}
`, m.Name, m.Name, m.Name, a.ModuleID, a.NodeID, a.ObjectID)
	}

	var out string
	for i, a := range m.Addresses {
		out += fmt.Sprintf(`func New%s_%d(client transport.Client) *%s {
	return &%s{Address: schema.ObjectAddress{ModuleID: %d, NodeID: %d, ObjectID: %d}, Client: client}
}
`, m.Name, i+1, m.Name, m.Name, a.ModuleID, a.NodeID, a.ObjectID)
	}
	return out
}

// FileName renders a module's canonical filename: its snake_case form with
// a .go suffix.
func FileName(moduleName string) string {
	return names.MethodCallName(moduleName) + ".go"
}
