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
	"testing"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/schema"
)

func TestStructResolvesFieldsInOrder(t *testing.T) {
	s := schema.StructDecl{
		Name:          "Point",
		ElementLabels: []string{"X", "Y", "Type"},
		ElementTypes:  []byte{5, 5, 9}, // i32, i32, bool
	}
	fields, err := Struct(s, testScope())
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	if fields[2].Name != "type_" {
		t.Errorf("reserved word field name = %q, want %q", fields[2].Name, "type_")
	}
	if fields[0].Type.Primitive != ir.PrimI32 || fields[1].Type.Primitive != ir.PrimI32 {
		t.Errorf("fields[0:2] = %+v, want two i32 primitives", fields[:2])
	}
}

func TestStructSelfReferenceViaLocalTable(t *testing.T) {
	localStructs := map[uint8]string{0: "Node"}
	scope := NewScope(nil, nil, localStructs)
	s := schema.StructDecl{
		Name:          "Node",
		ElementLabels: []string{"Next"},
		ElementTypes:  []byte{30, 2, 1}, // struct ref, local, id 1 -> "Node" itself
	}
	fields, err := Struct(s, scope)
	if err != nil {
		t.Fatalf("Struct: %v", err)
	}
	if fields[0].Type.RefName != "Node" {
		t.Errorf("self-reference RefName = %q, want %q", fields[0].Type.RefName, "Node")
	}
}

func TestStructCursorInvariantViolation(t *testing.T) {
	s := schema.StructDecl{
		Name:          "Bad",
		ElementLabels: []string{"A"},
		ElementTypes:  []byte{1, 1}, // one extra trailing byte
	}
	_, err := Struct(s, testScope())
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("want *SchemaError, got %T (%v)", err, err)
	}
}
