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
	"fmt"
	"strings"

	"github.com/escalante-bio/piglet-codegen/ir"
)

// renderEnum emits a Go integer enum type, its named constants, a Stringer
// implementation, an unexported fromInt32 validator used by the decode
// path, and its codec functions (encode<Name>/decode<Name>).
func renderEnum(e ir.ResolvedEnum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s int32\n\nconst (\n", e.Name)
	for i, label := range e.Labels {
		fmt.Fprintf(&b, "\t%s%s %s = %d\n", e.Name, label, e.Name, e.Values[i])
	}
	b.WriteString(")\n\n")

	fmt.Fprintf(&b, "func (v %s) String() string {\n\tswitch v {\n", e.Name)
	for _, label := range e.Labels {
		fmt.Fprintf(&b, "\tcase %s%s:\n\t\treturn %q\n", e.Name, label, label)
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn fmt.Sprintf(\"%s(%%d)\", int32(v))\n\t}\n}\n\n", e.Name)

	fnName := unexported(e.Name)
	fmt.Fprintf(&b, "func %sFromInt32(v int32) (%s, error) {\n\tswitch %s(v) {\n", fnName, e.Name, e.Name)
	for _, label := range e.Labels {
		fmt.Fprintf(&b, "\tcase %s%s:\n\t\treturn %s%s, nil\n", e.Name, label, e.Name, label)
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn 0, fmt.Errorf(\"unknown %s value %%d\", v)\n\t}\n}\n\n", e.Name)

	fmt.Fprintf(&b, "func encode%s(buf *bytes.Buffer, v %s) {\n\twire.EncodeEnum(buf, v)\n}\n\n", e.Name, e.Name)
	fmt.Fprintf(&b, "func decode%s(r *bytes.Reader) (%s, error) {\n\treturn wire.DecodeEnum(r, %sFromInt32)\n}\n",
		e.Name, e.Name, fnName)

	return b.String()
}
