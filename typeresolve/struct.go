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

package typeresolve

import (
	"fmt"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/schema"
)

// Struct resolves every element of s against scope and verifies the cursor
// consumed exactly one logical step per element label (plus two for each
// reference-typed one); any discrepancy is a fatal schema error.
func Struct(s schema.StructDecl, scope Scope) ([]ir.ResolvedField, error) {
	cursor := NewCursor(s.ElementTypes)
	fields := make([]ir.ResolvedField, 0, len(s.ElementLabels))

	for i, label := range s.ElementLabels {
		elem, err := ResolveStructElement(cursor, scope)
		if err != nil {
			return nil, fmt.Errorf("struct %q element %d (%s): %w", s.Name, i, label, err)
		}
		fieldName := names.FieldName(label)
		fields = append(fields, ir.ResolvedField{
			Name:       fieldName,
			Type:       elem.Type,
			WrapInMVec: elem.WrapInMVec,
		})
	}

	if !cursor.Done() {
		return nil, &SchemaError{Msg: fmt.Sprintf(
			"struct %q: element-type cursor consumed %d of %d bytes", s.Name, cursor.Pos(), cursor.Len())}
	}

	return fields, nil
}
