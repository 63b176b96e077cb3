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

	"github.com/escalante-bio/piglet-codegen/ir"
)

func primEncodeFn(p ir.Primitive) string {
	switch p {
	case ir.PrimI8:
		return "wire.EncodeI8"
	case ir.PrimU8:
		return "wire.EncodeU8"
	case ir.PrimI16:
		return "wire.EncodeI16"
	case ir.PrimU16:
		return "wire.EncodeU16"
	case ir.PrimI32:
		return "wire.EncodeI32"
	case ir.PrimU32:
		return "wire.EncodeU32"
	case ir.PrimF32:
		return "wire.EncodeF32"
	case ir.PrimBool:
		return "wire.EncodeBool"
	case ir.PrimString:
		return "wire.EncodeString"
	case ir.PrimBytes:
		return "wire.EncodeBytes"
	default:
		return "/* unknown primitive encode */"
	}
}

func primDecodeFn(p ir.Primitive) string {
	switch p {
	case ir.PrimI8:
		return "wire.DecodeI8"
	case ir.PrimU8:
		return "wire.DecodeU8"
	case ir.PrimI16:
		return "wire.DecodeI16"
	case ir.PrimU16:
		return "wire.DecodeU16"
	case ir.PrimI32:
		return "wire.DecodeI32"
	case ir.PrimU32:
		return "wire.DecodeU32"
	case ir.PrimF32:
		return "wire.DecodeF32"
	case ir.PrimBool:
		return "wire.DecodeBool"
	case ir.PrimString:
		return "wire.DecodeString"
	case ir.PrimBytes:
		return "wire.DecodeBytes"
	default:
		return "/* unknown primitive decode */"
	}
}

func vecPrimEncodeFn(p ir.Primitive) string {
	switch p {
	case ir.PrimI16:
		return "wire.EncodeVecI16"
	case ir.PrimU16:
		return "wire.EncodeVecU16"
	case ir.PrimI32:
		return "wire.EncodeVecI32"
	case ir.PrimU32:
		return "wire.EncodeVecU32"
	case ir.PrimF32:
		return "wire.EncodeVecF32"
	case ir.PrimBool:
		return "wire.EncodeVecBool"
	case ir.PrimString:
		return "wire.EncodeVecString"
	default:
		return "/* unknown vec primitive encode */"
	}
}

func vecPrimDecodeFn(p ir.Primitive) string {
	switch p {
	case ir.PrimI16:
		return "wire.DecodeVecI16"
	case ir.PrimU16:
		return "wire.DecodeVecU16"
	case ir.PrimI32:
		return "wire.DecodeVecI32"
	case ir.PrimU32:
		return "wire.DecodeVecU32"
	case ir.PrimF32:
		return "wire.DecodeVecF32"
	case ir.PrimBool:
		return "wire.DecodeVecBool"
	case ir.PrimString:
		return "wire.DecodeVecString"
	default:
		return "/* unknown vec primitive decode */"
	}
}

// encodeStmt renders a Go statement that encodes the value expression
// valueExpr (of type t.GoType()) into the *bytes.Buffer named bufExpr.
func encodeStmt(bufExpr, valueExpr string, t ir.TypeExpr) string {
	switch t.Kind {
	case ir.KindPrimitive:
		return fmt.Sprintf("%s(%s, %s)", primEncodeFn(t.Primitive), bufExpr, valueExpr)
	case ir.KindVecPrimitive:
		return fmt.Sprintf("%s(%s, %s)", vecPrimEncodeFn(t.Primitive), bufExpr, valueExpr)
	case ir.KindStructRef:
		if t.RefName == "wire.NetworkResult" {
			return fmt.Sprintf("wire.EncodeNetworkResult(%s, %s)", bufExpr, valueExpr)
		}
		return fmt.Sprintf("encode%s(%s, %s)", t.RefName, bufExpr, valueExpr)
	case ir.KindVecStructRef:
		if t.RefName == "wire.NetworkResult" {
			return fmt.Sprintf("wire.EncodeMVecStructFrame(%s, len(%s), func(i int, inner *bytes.Buffer) { wire.EncodeNetworkResult(inner, %s[i]) })",
				bufExpr, valueExpr, valueExpr)
		}
		return fmt.Sprintf("wire.EncodeMVecStructFrame(%s, len(%s), func(i int, inner *bytes.Buffer) { encode%s(inner, %s[i]) })",
			bufExpr, valueExpr, t.RefName, valueExpr)
	case ir.KindEnumRef:
		return fmt.Sprintf("wire.EncodeEnum(%s, %s)", bufExpr, valueExpr)
	case ir.KindVecEnumRef:
		return fmt.Sprintf("wire.EncodeMVecEnum(%s, %s)", bufExpr, valueExpr)
	case ir.KindNetworkResult:
		return fmt.Sprintf("wire.EncodeNetworkResult(%s, %s)", bufExpr, valueExpr)
	case ir.KindErrorCode:
		return fmt.Sprintf("wire.EncodeErrorCode(%s, %s)", bufExpr, valueExpr)
	default:
		return "/* unknown type encode */"
	}
}

// decodeExpr renders a Go expression that decodes a value of type t from
// the *bytes.Reader named readerExpr. It always yields a two-value
// expression suitable for `v, err :=`; vector-of-struct is the one shape
// that needs the statement form instead (decodeVecStructStmt).
func decodeExpr(readerExpr string, t ir.TypeExpr) string {
	switch t.Kind {
	case ir.KindPrimitive:
		return fmt.Sprintf("%s(%s)", primDecodeFn(t.Primitive), readerExpr)
	case ir.KindVecPrimitive:
		return fmt.Sprintf("%s(%s)", vecPrimDecodeFn(t.Primitive), readerExpr)
	case ir.KindStructRef:
		if t.RefName == "wire.NetworkResult" {
			return fmt.Sprintf("wire.DecodeNetworkResult(%s)", readerExpr)
		}
		return fmt.Sprintf("decode%s(%s)", t.RefName, readerExpr)
	case ir.KindEnumRef:
		return fmt.Sprintf("wire.DecodeEnum(%s, %sFromInt32)", readerExpr, unexported(t.RefName))
	case ir.KindVecEnumRef:
		return fmt.Sprintf("wire.DecodeMVecEnum(%s, %sFromInt32)", readerExpr, unexported(t.RefName))
	case ir.KindNetworkResult:
		return fmt.Sprintf("wire.DecodeNetworkResult(%s)", readerExpr)
	case ir.KindErrorCode:
		return fmt.Sprintf("wire.DecodeErrorCode(%s)", readerExpr)
	default:
		return "/* unknown type decode */"
	}
}

// decodeVecStructStmt renders the multi-statement form needed to decode a
// vector-of-struct field into a pre-declared variable named dst, since
// DecodeMVecStructFrame reports completion via error rather than returning
// a value directly.
func decodeVecStructStmt(readerExpr, dst string, t ir.TypeExpr, onErr string) string {
	decodeOne := fmt.Sprintf("decode%s(inner)", t.RefName)
	if t.RefName == "wire.NetworkResult" {
		decodeOne = "wire.DecodeNetworkResult(inner)"
	}
	return fmt.Sprintf(`var %s []%s
	if err := wire.DecodeMVecStructFrame(%s, func(inner *bytes.Reader) error {
		item, err := %s
		if err != nil {
			return err
		}
		%s = append(%s, item)
		return nil
	}); err != nil {
		%s
	}`, dst, t.RefName, readerExpr, decodeOne, dst, dst, onErr)
}

func unexported(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] = r[0] - 'A' + 'a'
	}
	return string(r)
}
