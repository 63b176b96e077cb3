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

// Package typeresolve turns the device's raw per-object type-code streams
// (struct element types, method parameter types) into canonical
// ir.TypeExpr / ir.Parameter values, consulting a Scope for every
// reference-bearing code. The two code spaces overlap numerically but mean
// different things, so they live in separate resolution tables.
package typeresolve

import (
	"github.com/escalante-bio/piglet-codegen/ir"
)

// Element is one resolved struct field: its type and whether the device
// frames it with the length-prefixed MVec wrapper rather than a bare
// element stream.
type Element struct {
	Type       ir.TypeExpr
	WrapInMVec bool
}

func prim(p ir.Primitive) ir.TypeExpr { return ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: p} }
func vecPrim(p ir.Primitive) ir.TypeExpr {
	return ir.TypeExpr{Kind: ir.KindVecPrimitive, Primitive: p}
}

// ResolveStructElement consumes one struct element's type code(s) from
// cursor and resolves it against scope.
func ResolveStructElement(cursor *Cursor, scope Scope) (Element, error) {
	t, err := cursor.readByte()
	if err != nil {
		return Element{}, err
	}
	switch t {
	case 1:
		return Element{Type: prim(ir.PrimI8)}, nil
	case 2:
		return Element{Type: prim(ir.PrimU8)}, nil
	case 3:
		return Element{Type: prim(ir.PrimI16)}, nil
	case 4:
		return Element{Type: prim(ir.PrimU16)}, nil
	case 5:
		return Element{Type: prim(ir.PrimI32)}, nil
	case 6:
		return Element{Type: prim(ir.PrimU32)}, nil
	case 7:
		return Element{Type: prim(ir.PrimString)}, nil
	case 8:
		return Element{Type: prim(ir.PrimBytes)}, nil
	case 9:
		return Element{Type: prim(ir.PrimBool)}, nil
	case 11:
		return Element{Type: vecPrim(ir.PrimI16)}, nil
	case 12:
		return Element{Type: vecPrim(ir.PrimU16)}, nil
	case 13:
		return Element{Type: vecPrim(ir.PrimI32)}, nil
	case 14:
		return Element{Type: vecPrim(ir.PrimU32)}, nil
	case 15:
		return Element{Type: vecPrim(ir.PrimBool)}, nil
	case 27:
		return Element{Type: vecPrim(ir.PrimString)}, nil
	case 30:
		source, id, err := cursor.readRef()
		if err != nil {
			return Element{}, err
		}
		name, err := scope.resolveStructRef(source, id)
		if err != nil {
			return Element{}, err
		}
		return Element{Type: ir.TypeExpr{Kind: ir.KindStructRef, RefName: name}}, nil
	case 31:
		source, id, err := cursor.readRef()
		if err != nil {
			return Element{}, err
		}
		name, err := scope.resolveStructRef(source, id)
		if err != nil {
			return Element{}, err
		}
		return Element{Type: ir.TypeExpr{Kind: ir.KindVecStructRef, RefName: name}, WrapInMVec: true}, nil
	case 32:
		source, id, err := cursor.readRef()
		if err != nil {
			return Element{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return Element{}, err
		}
		return Element{Type: ir.TypeExpr{Kind: ir.KindEnumRef, RefName: name}}, nil
	case 33:
		return Element{Type: ir.TypeExpr{Kind: ir.KindErrorCode}}, nil
	case 35:
		source, id, err := cursor.readRef()
		if err != nil {
			return Element{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return Element{}, err
		}
		return Element{Type: ir.TypeExpr{Kind: ir.KindVecEnumRef, RefName: name}, WrapInMVec: true}, nil
	default:
		return Element{}, unknownCode("struct element", t)
	}
}

// ResolveMethodParameter consumes one method parameter's type code(s) from
// cursor and resolves it into a fully-formed ir.Parameter (minus Name,
// which the caller fills in from the parallel parameter-labels sequence).
// The argument, return-element and return-value code ranges are disjoint,
// so the parameter's role is derived directly from the code.
func ResolveMethodParameter(cursor *Cursor, scope Scope) (ir.Parameter, error) {
	t, err := cursor.readByte()
	if err != nil {
		return ir.Parameter{}, err
	}

	switch t {
	// Arguments: primitive, non-reference.
	case 1:
		return ir.Parameter{Type: prim(ir.PrimI8), Role: ir.RoleArgument}, nil
	case 2:
		return ir.Parameter{Type: prim(ir.PrimU8), Role: ir.RoleArgument}, nil
	case 3:
		return ir.Parameter{Type: prim(ir.PrimI16), Role: ir.RoleArgument}, nil
	case 4:
		return ir.Parameter{Type: prim(ir.PrimU16), Role: ir.RoleArgument}, nil
	case 5:
		return ir.Parameter{Type: prim(ir.PrimI32), Role: ir.RoleArgument}, nil
	case 6:
		return ir.Parameter{Type: prim(ir.PrimU32), Role: ir.RoleArgument}, nil
	case 7:
		return ir.Parameter{Type: prim(ir.PrimString), Role: ir.RoleArgument}, nil
	case 8:
		return ir.Parameter{Type: prim(ir.PrimBytes), Role: ir.RoleArgument}, nil
	case 33:
		return ir.Parameter{Type: prim(ir.PrimBool), Role: ir.RoleArgument}, nil
	case 41:
		return ir.Parameter{Type: vecPrim(ir.PrimI16), Role: ir.RoleArgument}, nil
	case 45:
		return ir.Parameter{Type: vecPrim(ir.PrimU16), Role: ir.RoleArgument}, nil
	case 49:
		return ir.Parameter{Type: vecPrim(ir.PrimI32), Role: ir.RoleArgument}, nil
	case 53:
		return ir.Parameter{Type: vecPrim(ir.PrimU32), Role: ir.RoleArgument}, nil
	case 66:
		return ir.Parameter{Type: vecPrim(ir.PrimBool), Role: ir.RoleArgument}, nil
	case 102:
		return ir.Parameter{Type: prim(ir.PrimF32), Role: ir.RoleArgument}, nil

	// Return elements: primitive, non-reference.
	case 18:
		return ir.Parameter{Type: prim(ir.PrimU8), Role: ir.RoleReturnElement}, nil
	case 19:
		return ir.Parameter{Type: prim(ir.PrimI16), Role: ir.RoleReturnElement}, nil
	case 20:
		return ir.Parameter{Type: prim(ir.PrimU16), Role: ir.RoleReturnElement}, nil
	case 21:
		return ir.Parameter{Type: prim(ir.PrimI32), Role: ir.RoleReturnElement}, nil
	case 22:
		return ir.Parameter{Type: prim(ir.PrimU32), Role: ir.RoleReturnElement}, nil
	case 23:
		return ir.Parameter{Type: prim(ir.PrimString), Role: ir.RoleReturnElement}, nil
	case 24:
		return ir.Parameter{Type: prim(ir.PrimBytes), Role: ir.RoleReturnElement}, nil
	case 35:
		return ir.Parameter{Type: prim(ir.PrimBool), Role: ir.RoleReturnElement}, nil
	case 43:
		return ir.Parameter{Type: vecPrim(ir.PrimI16), Role: ir.RoleReturnElement}, nil
	case 47:
		return ir.Parameter{Type: vecPrim(ir.PrimU16), Role: ir.RoleReturnElement}, nil
	case 51:
		return ir.Parameter{Type: vecPrim(ir.PrimI32), Role: ir.RoleReturnElement}, nil
	case 55:
		return ir.Parameter{Type: vecPrim(ir.PrimU32), Role: ir.RoleReturnElement}, nil
	case 68:
		return ir.Parameter{Type: vecPrim(ir.PrimBool), Role: ir.RoleReturnElement}, nil
	case 76:
		return ir.Parameter{Type: vecPrim(ir.PrimString), Role: ir.RoleReturnElement}, nil
	case 104:
		return ir.Parameter{Type: prim(ir.PrimF32), Role: ir.RoleReturnElement}, nil

	// Return values: primitive, non-reference.
	case 25:
		return ir.Parameter{Type: prim(ir.PrimI8), Role: ir.RoleReturnValue}, nil
	case 26:
		return ir.Parameter{Type: prim(ir.PrimU8), Role: ir.RoleReturnValue}, nil
	case 27:
		return ir.Parameter{Type: prim(ir.PrimI16), Role: ir.RoleReturnValue}, nil
	case 28:
		return ir.Parameter{Type: prim(ir.PrimU16), Role: ir.RoleReturnValue}, nil
	case 29:
		return ir.Parameter{Type: prim(ir.PrimI32), Role: ir.RoleReturnValue}, nil
	case 30:
		return ir.Parameter{Type: prim(ir.PrimU32), Role: ir.RoleReturnValue}, nil
	case 31:
		return ir.Parameter{Type: prim(ir.PrimString), Role: ir.RoleReturnValue}, nil
	case 32:
		return ir.Parameter{Type: prim(ir.PrimBytes), Role: ir.RoleReturnValue}, nil
	case 36:
		return ir.Parameter{Type: prim(ir.PrimBool), Role: ir.RoleReturnValue}, nil
	case 44:
		return ir.Parameter{Type: vecPrim(ir.PrimI16), Role: ir.RoleReturnValue}, nil
	case 48:
		return ir.Parameter{Type: vecPrim(ir.PrimU16), Role: ir.RoleReturnValue}, nil
	case 52:
		return ir.Parameter{Type: vecPrim(ir.PrimI32), Role: ir.RoleReturnValue}, nil
	case 56:
		return ir.Parameter{Type: vecPrim(ir.PrimU32), Role: ir.RoleReturnValue}, nil
	case 69:
		return ir.Parameter{Type: vecPrim(ir.PrimBool), Role: ir.RoleReturnValue}, nil
	case 105:
		return ir.Parameter{Type: prim(ir.PrimF32), Role: ir.RoleReturnValue}, nil

	// Reference-bearing codes: arguments.
	case 61:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveStructRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindVecStructRef, RefName: name}, Role: ir.RoleArgument, WrapInMVec: true}, nil
	case 78:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindEnumRef, RefName: name}, Role: ir.RoleArgument}, nil
	case 82:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindVecEnumRef, RefName: name}, Role: ir.RoleArgument, WrapInMVec: true}, nil

	// Reference-bearing codes: return values.
	case 60:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveStructRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindStructRef, RefName: name}, Role: ir.RoleReturnValue}, nil
	case 64:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveStructRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindVecStructRef, RefName: name}, Role: ir.RoleReturnValue, WrapInMVec: true}, nil
	case 81:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindEnumRef, RefName: name}, Role: ir.RoleReturnValue}, nil
	case 85:
		source, id, err := cursor.readRef()
		if err != nil {
			return ir.Parameter{}, err
		}
		name, err := scope.resolveEnumRef(source, id)
		if err != nil {
			return ir.Parameter{}, err
		}
		return ir.Parameter{Type: ir.TypeExpr{Kind: ir.KindVecEnumRef, RefName: name}, Role: ir.RoleReturnValue, WrapInMVec: true}, nil

	default:
		return ir.Parameter{}, unknownCode("method parameter", t)
	}
}
