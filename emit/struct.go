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

// renderStruct emits a Go struct type (one exported, snake_case-bodied
// field per device-reported element) plus its encode<Name>/decode<Name>
// codec functions.
func renderStruct(s ir.ResolvedStruct) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", s.Name)
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "\t%s %s\n", exported(f.Name), f.Type.GoType())
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "func encode%s(buf *bytes.Buffer, v %s) {\n\twire.EncodeStructFrame(buf, func(inner *bytes.Buffer) {\n", s.Name, s.Name)
	for _, f := range s.Fields {
		b.WriteString("\t\t" + encodeStmt("inner", "v."+exported(f.Name), f.Type) + "\n")
	}
	b.WriteString("\t})\n}\n\n")

	fmt.Fprintf(&b, "func decode%s(r *bytes.Reader) (%s, error) {\n\tvar out %s\n\terr := wire.DecodeStructFrame(r, func(inner *bytes.Reader) error {\n\t\tvar err error\n",
		s.Name, s.Name, s.Name)
	for _, f := range s.Fields {
		dst := "out." + exported(f.Name)
		if f.Type.Kind == ir.KindVecStructRef {
			b.WriteString("\t\t" + fieldVecStructDecode(dst, f.Type) + "\n")
		} else {
			fmt.Fprintf(&b, "\t\t%s, err = %s\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n", dst, decodeExpr("inner", f.Type))
		}
	}
	b.WriteString("\t\treturn nil\n\t})\n\treturn out, err\n}\n")

	return b.String()
}

// fieldVecStructDecode renders the decode-into-existing-field form of
// decodeVecStructStmt, used inside a struct's own decode function where the
// destination is already addressable (out.Field) rather than a fresh local.
func fieldVecStructDecode(dst string, t ir.TypeExpr) string {
	decodeOne := fmt.Sprintf("decode%s(seg)", t.RefName)
	if t.RefName == "wire.NetworkResult" {
		decodeOne = "wire.DecodeNetworkResult(seg)"
	}
	return fmt.Sprintf(`if err := wire.DecodeMVecStructFrame(inner, func(seg *bytes.Reader) error {
			item, err := %s
			if err != nil {
				return err
			}
			%s = append(%s, item)
			return nil
		}); err != nil {
			return err
		}`, decodeOne, dst, dst)
}
