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

	"github.com/google/go-cmp/cmp"

	"github.com/escalante-bio/piglet-codegen/globaltypes"
	"github.com/escalante-bio/piglet-codegen/ir"
)

func testScope() Scope {
	global := &globaltypes.Index{
		Enums:   map[uint8]string{0: "GlobalColor"},
		Structs: map[uint8]string{0: "GlobalPoint"},
	}
	return NewScope(global, map[uint8]string{0: "LocalColor"}, map[uint8]string{0: "LocalPoint"})
}

func TestResolveStructElementPrimitivesAndVectors(t *testing.T) {
	tests := []struct {
		code byte
		want ir.TypeExpr
	}{
		{1, ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimI8}},
		{6, ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimU32}},
		{7, ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimString}},
		{9, ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimBool}},
		{11, ir.TypeExpr{Kind: ir.KindVecPrimitive, Primitive: ir.PrimI16}},
		{15, ir.TypeExpr{Kind: ir.KindVecPrimitive, Primitive: ir.PrimBool}},
		{27, ir.TypeExpr{Kind: ir.KindVecPrimitive, Primitive: ir.PrimString}},
		{33, ir.TypeExpr{Kind: ir.KindErrorCode}},
	}
	for _, tc := range tests {
		c := NewCursor([]byte{tc.code})
		got, err := ResolveStructElement(c, testScope())
		if err != nil {
			t.Fatalf("code %d: %v", tc.code, err)
		}
		if diff := cmp.Diff(tc.want, got.Type); diff != "" {
			t.Errorf("code %d type mismatch (-want +got):\n%s", tc.code, diff)
		}
		if !c.Done() {
			t.Errorf("code %d: cursor not fully consumed", tc.code)
		}
	}
}

func TestResolveStructElementReferences(t *testing.T) {
	tests := []struct {
		name       string
		code       byte
		source, id byte
		wantKind   ir.TypeKind
		wantRef    string
		wantMVec   bool
	}{
		{"global struct", 30, 1, 1, ir.KindStructRef, "GlobalPoint", false},
		{"local struct", 30, 2, 1, ir.KindStructRef, "LocalPoint", false},
		{"network result", 30, 3, 1, ir.KindStructRef, "wire.NetworkResult", false},
		{"vec global struct", 31, 1, 1, ir.KindVecStructRef, "GlobalPoint", true},
		{"global enum", 32, 1, 1, ir.KindEnumRef, "GlobalColor", false},
		{"local enum", 32, 2, 1, ir.KindEnumRef, "LocalColor", false},
		{"vec local enum", 35, 2, 1, ir.KindVecEnumRef, "LocalColor", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor([]byte{tc.code, tc.source, tc.id})
			got, err := ResolveStructElement(c, testScope())
			if err != nil {
				t.Fatalf("%v", err)
			}
			if got.Type.Kind != tc.wantKind || got.Type.RefName != tc.wantRef {
				t.Errorf("got Kind=%v RefName=%q, want Kind=%v RefName=%q", got.Type.Kind, got.Type.RefName, tc.wantKind, tc.wantRef)
			}
			if got.WrapInMVec != tc.wantMVec {
				t.Errorf("WrapInMVec = %v, want %v", got.WrapInMVec, tc.wantMVec)
			}
			if !c.Done() {
				t.Error("cursor not fully consumed")
			}
		})
	}
}

func TestResolveStructElementUnknownCode(t *testing.T) {
	c := NewCursor([]byte{200})
	_, err := ResolveStructElement(c, testScope())
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("want *SchemaError, got %T (%v)", err, err)
	}
}

func TestResolveStructElementUnknownSource(t *testing.T) {
	c := NewCursor([]byte{30, 9, 1})
	_, err := ResolveStructElement(c, testScope())
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("want *SchemaError, got %T (%v)", err, err)
	}
}

func TestResolveMethodParameterDisjointCodeSpace(t *testing.T) {
	tests := []struct {
		code     byte
		wantRole ir.ParameterRole
		wantPrim ir.Primitive
	}{
		{1, ir.RoleArgument, ir.PrimI8},
		{102, ir.RoleArgument, ir.PrimF32},
		{18, ir.RoleReturnElement, ir.PrimU8},
		{35, ir.RoleReturnElement, ir.PrimBool},
		{25, ir.RoleReturnValue, ir.PrimI8},
		{36, ir.RoleReturnValue, ir.PrimBool},
	}
	for _, tc := range tests {
		c := NewCursor([]byte{tc.code})
		got, err := ResolveMethodParameter(c, testScope())
		if err != nil {
			t.Fatalf("code %d: %v", tc.code, err)
		}
		if got.Role != tc.wantRole {
			t.Errorf("code %d: Role = %v, want %v", tc.code, got.Role, tc.wantRole)
		}
		if got.Type.Primitive != tc.wantPrim {
			t.Errorf("code %d: Primitive = %v, want %v", tc.code, got.Type.Primitive, tc.wantPrim)
		}
	}
}

func TestResolveMethodParameterReferenceBearingCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     byte
		wantRole ir.ParameterRole
		wantKind ir.TypeKind
		wantMVec bool
	}{
		{"vec-struct argument", 61, ir.RoleArgument, ir.KindVecStructRef, true},
		{"enum argument", 78, ir.RoleArgument, ir.KindEnumRef, false},
		{"vec-enum argument", 82, ir.RoleArgument, ir.KindVecEnumRef, true},
		{"struct return value", 60, ir.RoleReturnValue, ir.KindStructRef, false},
		{"vec-struct return value", 64, ir.RoleReturnValue, ir.KindVecStructRef, true},
		{"enum return value", 81, ir.RoleReturnValue, ir.KindEnumRef, false},
		{"vec-enum return value", 85, ir.RoleReturnValue, ir.KindVecEnumRef, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor([]byte{tc.code, 1, 1}) // global, id 1
			got, err := ResolveMethodParameter(c, testScope())
			if err != nil {
				t.Fatalf("%v", err)
			}
			if got.Role != tc.wantRole || got.Type.Kind != tc.wantKind || got.WrapInMVec != tc.wantMVec {
				t.Errorf("got %+v, want Role=%v Kind=%v WrapInMVec=%v", got, tc.wantRole, tc.wantKind, tc.wantMVec)
			}
			if !c.Done() {
				t.Error("cursor not fully consumed")
			}
		})
	}
}

func TestResolveMethodParameterUnknownCode(t *testing.T) {
	c := NewCursor([]byte{254})
	_, err := ResolveMethodParameter(c, testScope())
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("want *SchemaError, got %T (%v)", err, err)
	}
}
