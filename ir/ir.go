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

// Package ir defines the intermediate representation produced by type
// resolution and name canonicalisation and consumed by the method sorter
// and the emitter: resolved type expressions, resolved parameters, resolved
// methods, enums and structs, and the per-object GeneratedModule that the
// module builder assembles.
package ir

import "github.com/escalante-bio/piglet-codegen/schema"

// Primitive is the closed set of scalar wire primitives.
type Primitive int

const (
	PrimI8 Primitive = iota
	PrimU8
	PrimI16
	PrimU16
	PrimI32
	PrimU32
	PrimF32
	PrimBool
	PrimString
	PrimBytes
)

// GoType returns the Go spelling of the scalar primitive.
func (p Primitive) GoType() string {
	switch p {
	case PrimI8:
		return "int8"
	case PrimU8:
		return "uint8"
	case PrimI16:
		return "int16"
	case PrimU16:
		return "uint16"
	case PrimI32:
		return "int32"
	case PrimU32:
		return "uint32"
	case PrimF32:
		return "float32"
	case PrimBool:
		return "bool"
	case PrimString:
		return "string"
	case PrimBytes:
		return "[]byte"
	default:
		return "/* unknown primitive */"
	}
}

// TypeKind discriminates the closed set of shapes a TypeExpr can take.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindVecPrimitive
	KindStructRef
	KindVecStructRef
	KindEnumRef
	KindVecEnumRef
	KindNetworkResult
	KindErrorCode
)

// TypeExpr is a resolved, canonical type reference: either a primitive (or
// vector of one), a reference to a struct or enum declared somewhere in
// scope (by its already-canonicalised name), or one of the two reserved
// built-in types.
type TypeExpr struct {
	Kind      TypeKind
	Primitive Primitive // valid when Kind is KindPrimitive or KindVecPrimitive
	RefName   string    // valid when Kind references a struct or enum
}

// GoType renders the resolved type as the Go type used for a struct field,
// method parameter, or return value.
func (t TypeExpr) GoType() string {
	switch t.Kind {
	case KindPrimitive:
		return t.Primitive.GoType()
	case KindVecPrimitive:
		return "[]" + t.Primitive.GoType()
	case KindStructRef, KindEnumRef:
		return t.RefName
	case KindVecStructRef, KindVecEnumRef:
		return "[]" + t.RefName
	case KindNetworkResult:
		return "wire.NetworkResult"
	case KindErrorCode:
		return "wire.ErrorCode"
	default:
		return "/* unknown type */"
	}
}

// IsVector reports whether the resolved type is any of the vector kinds.
func (t TypeExpr) IsVector() bool {
	switch t.Kind {
	case KindVecPrimitive, KindVecStructRef, KindVecEnumRef:
		return true
	default:
		return false
	}
}

// ParameterRole classifies a resolved method parameter by where its value
// appears in the call: as an argument supplied by the caller, as one field
// of a synthesized multi-value reply struct, or as the method's single
// return value.
type ParameterRole int

const (
	RoleArgument ParameterRole = iota
	RoleReturnElement
	RoleReturnValue
)

// Parameter is a resolved struct field or method parameter: a canonical
// name, its resolved type, (for method parameters) its role, and whether it
// must be wrapped in the device's length-prefixed MVec framing rather than
// encoded as a plain sequence of individually-framed elements.
type Parameter struct {
	Name       string
	Type       TypeExpr
	Role       ParameterRole
	WrapInMVec bool
}

// ResolvedEnum is a fully resolved, name-canonicalised enum declaration
// ready for emission.
type ResolvedEnum struct {
	Name   string
	Labels []string // canonicalised, PascalCase
	Values []int32
}

// ResolvedField is one field of a resolved struct declaration.
type ResolvedField struct {
	Name       string
	Type       TypeExpr
	WrapInMVec bool
}

// ResolvedStruct is a fully resolved, name-canonicalised struct declaration
// ready for emission.
type ResolvedStruct struct {
	Name   string
	Fields []ResolvedField
}

// ResolvedMethod is a fully resolved, name-canonicalised, disambiguated
// method ready for sorting and emission.
type ResolvedMethod struct {
	// CallName is the snake_case call-site name, already disambiguated
	// ("aspirate_1", "aspirate_2", ...) if this method shared its raw name
	// with siblings.
	CallName string
	// ReplyName is the PascalCase base name used to form "<ReplyName>Reply"
	// when len(ReturnElements) > 1. It is derived from the raw, non-suffixed
	// method name for the first of a group of overloads and from the
	// suffixed name for subsequent ones.
	ReplyName	string
	InterfaceID	uint8
	MethodID	uint16
	CallType	uint8
	Arguments	[]Parameter
	ReturnElements	[]Parameter
	ReturnValues	[]Parameter
}

// GeneratedModule is the per-object unit of output the emitter renders into
// one source file.
type GeneratedModule struct {
	Name      string
	Addresses []schema.ObjectAddress
	Enums     []ResolvedEnum
	Structs   []ResolvedStruct
	Methods   []ResolvedMethod
	Unknown   bool
	Version   string
}
