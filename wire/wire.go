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

// Package wire implements the device's tagged-frame binary codec: every
// value on the wire is preceded by a 4-byte header — a type id, a flags
// byte, and a little-endian length — followed by a payload whose shape
// depends on the type id. This package supplies the primitive,
// vector-of-primitive, and generic enum/struct framing helpers that the
// emitted client code calls into; it does not know about any particular
// device object, enum, or struct.
//
// The f32 and vector-of-f32 type ids (10, 16) are internal codec constants
// never reported by device introspection, so any otherwise-unused value
// works. See DESIGN.md.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Type ids for the tagged frame header. These match the device's struct
// element-type codes wherever introspection reports one.
const (
	TypeI8	byte = 1
	TypeU8	byte = 2
	TypeI16	byte = 3
	TypeU16	byte = 4
	TypeI32	byte = 5
	TypeU32	byte = 6
	TypeString	byte = 7
	TypeBytes	byte = 8
	TypeBool	byte = 9
	TypeF32	byte = 10
	TypeVecI16	byte = 11
	TypeVecU16	byte = 12
	TypeVecI32	byte = 13
	TypeVecU32	byte = 14
	TypeVecBool	byte = 15
	TypeVecF32	byte = 16
	TypeVecString	byte = 27
	TypeStruct	byte = 30
	TypeVecStruct	byte = 31
	TypeEnum	byte = 32
	TypeErrorCode	byte = 33
	TypeVecEnum	byte = 35
)

// FrameError reports a tagged-frame header whose type id did not match what
// the decoder expected.
type FrameError struct {
	Expected byte
	Got      byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("wire: expected type id %d but got %d", e.Expected, e.Got)
}

func writeHeader(buf *bytes.Buffer, typeID byte, length int) {
	buf.WriteByte(typeID)
	buf.WriteByte(0) // flags, always zero on encode
	var lb [2]byte
	binary.LittleEndian.PutUint16(lb[:], uint16(length))
	buf.Write(lb[:])
}

func readHeader(r *bytes.Reader, expected byte) (int, error) {
	typeID, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("wire: reading type id: %w", err)
	}
	if typeID != expected {
		return 0, &FrameError{Expected: expected, Got: typeID}
	}
	if _, err := r.ReadByte(); err != nil { // flags, discarded
		return 0, fmt.Errorf("wire: reading flags: %w", err)
	}
	var lb [2]byte
	if _, err := io.ReadFull(r, lb[:]); err != nil {
		return 0, fmt.Errorf("wire: reading length: %w", err)
	}
	return int(binary.LittleEndian.Uint16(lb[:])), nil
}

// readPayload reads exactly length bytes from r into a fresh slice.
func readPayload(r *bytes.Reader, length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("wire: reading payload: %w", err)
	}
	return b, nil
}

// --- scalar primitives ---

func EncodeI8(buf *bytes.Buffer, v int8) {
	writeHeader(buf, TypeI8, 1)
	buf.WriteByte(byte(v))
}

func DecodeI8(r *bytes.Reader) (int8, error) {
	n, err := readHeader(r, TypeI8)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 1 {
		return 0, err
	}
	return int8(b[0]), nil
}

func EncodeU8(buf *bytes.Buffer, v uint8) {
	writeHeader(buf, TypeU8, 1)
	buf.WriteByte(v)
}

func DecodeU8(r *bytes.Reader) (uint8, error) {
	n, err := readHeader(r, TypeU8)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 1 {
		return 0, err
	}
	return b[0], nil
}

func EncodeBool(buf *bytes.Buffer, v bool) {
	writeHeader(buf, TypeBool, 1)
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func DecodeBool(r *bytes.Reader) (bool, error) {
	n, err := readHeader(r, TypeBool)
	if err != nil {
		return false, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 1 {
		return false, err
	}
	return b[0] != 0, nil
}

func EncodeI16(buf *bytes.Buffer, v int16) {
	writeHeader(buf, TypeI16, 2)
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	buf.Write(b[:])
}

func DecodeI16(r *bytes.Reader) (int16, error) {
	n, err := readHeader(r, TypeI16)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 2 {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func EncodeU16(buf *bytes.Buffer, v uint16) {
	writeHeader(buf, TypeU16, 2)
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func DecodeU16(r *bytes.Reader) (uint16, error) {
	n, err := readHeader(r, TypeU16)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 2 {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func EncodeI32(buf *bytes.Buffer, v int32) {
	writeHeader(buf, TypeI32, 4)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func DecodeI32(r *bytes.Reader) (int32, error) {
	n, err := readHeader(r, TypeI32)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 4 {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func EncodeU32(buf *bytes.Buffer, v uint32) {
	writeHeader(buf, TypeU32, 4)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func DecodeU32(r *bytes.Reader) (uint32, error) {
	n, err := readHeader(r, TypeU32)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 4 {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func EncodeF32(buf *bytes.Buffer, v float32) {
	writeHeader(buf, TypeF32, 4)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	buf.Write(b[:])
}

func DecodeF32(r *bytes.Reader) (float32, error) {
	n, err := readHeader(r, TypeF32)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 4 {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func EncodeString(buf *bytes.Buffer, v string) {
	writeHeader(buf, TypeString, len(v))
	buf.WriteString(v)
}

func DecodeString(r *bytes.Reader) (string, error) {
	n, err := readHeader(r, TypeString)
	if err != nil {
		return "", err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func EncodeBytes(buf *bytes.Buffer, v []byte) {
	writeHeader(buf, TypeBytes, len(v))
	buf.Write(v)
}

func DecodeBytes(r *bytes.Reader) ([]byte, error) {
	n, err := readHeader(r, TypeBytes)
	if err != nil {
		return nil, err
	}
	return readPayload(r, n)
}

// --- vectors of primitives: length = total byte count, packed LE elements ---

func EncodeVecI16(buf *bytes.Buffer, v []int16) {
	writeHeader(buf, TypeVecI16, 2*len(v))
	for _, e := range v {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(e))
		buf.Write(b[:])
	}
}

func DecodeVecI16(r *bytes.Reader) ([]int16, error) {
	n, err := readHeader(r, TypeVecI16)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]int16, 0, len(b)/2)
	for i := 0; i+2 <= len(b); i += 2 {
		out = append(out, int16(binary.LittleEndian.Uint16(b[i:])))
	}
	return out, nil
}

func EncodeVecU16(buf *bytes.Buffer, v []uint16) {
	writeHeader(buf, TypeVecU16, 2*len(v))
	for _, e := range v {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], e)
		buf.Write(b[:])
	}
}

func DecodeVecU16(r *bytes.Reader) ([]uint16, error) {
	n, err := readHeader(r, TypeVecU16)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, 0, len(b)/2)
	for i := 0; i+2 <= len(b); i += 2 {
		out = append(out, binary.LittleEndian.Uint16(b[i:]))
	}
	return out, nil
}

func EncodeVecI32(buf *bytes.Buffer, v []int32) {
	writeHeader(buf, TypeVecI32, 4*len(v))
	for _, e := range v {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(e))
		buf.Write(b[:])
	}
}

func DecodeVecI32(r *bytes.Reader) ([]int32, error) {
	n, err := readHeader(r, TypeVecI32)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		out = append(out, int32(binary.LittleEndian.Uint32(b[i:])))
	}
	return out, nil
}

func EncodeVecU32(buf *bytes.Buffer, v []uint32) {
	writeHeader(buf, TypeVecU32, 4*len(v))
	for _, e := range v {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], e)
		buf.Write(b[:])
	}
}

func DecodeVecU32(r *bytes.Reader) ([]uint32, error) {
	n, err := readHeader(r, TypeVecU32)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(b[i:]))
	}
	return out, nil
}

func EncodeVecBool(buf *bytes.Buffer, v []bool) {
	writeHeader(buf, TypeVecBool, len(v))
	for _, e := range v {
		if e {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	}
}

func DecodeVecBool(r *bytes.Reader) ([]bool, error) {
	n, err := readHeader(r, TypeVecBool)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(b))
	for i, e := range b {
		out[i] = e != 0
	}
	return out, nil
}

func EncodeVecF32(buf *bytes.Buffer, v []float32) {
	writeHeader(buf, TypeVecF32, 4*len(v))
	for _, e := range v {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(e))
		buf.Write(b[:])
	}
}

func DecodeVecF32(r *bytes.Reader) ([]float32, error) {
	n, err := readHeader(r, TypeVecF32)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]float32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(b[i:])))
	}
	return out, nil
}

// EncodeVecString encodes a vector of strings as a sequence of
// <len:u16><bytes> segments packed inside the outer tagged frame, the same
// inner-segment convention vector-of-struct uses. The packed fixed-width
// rule the integer vectors follow cannot apply to variable-width strings.
// See DESIGN.md.
func EncodeVecString(buf *bytes.Buffer, v []string) {
	var inner bytes.Buffer
	for _, s := range v {
		var lb [2]byte
		binary.LittleEndian.PutUint16(lb[:], uint16(len(s)))
		inner.Write(lb[:])
		inner.WriteString(s)
	}
	writeHeader(buf, TypeVecString, inner.Len())
	buf.Write(inner.Bytes())
}

func DecodeVecString(r *bytes.Reader) ([]string, error) {
	n, err := readHeader(r, TypeVecString)
	if err != nil {
		return nil, err
	}
	payload, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	inner := bytes.NewReader(payload)
	var out []string
	for inner.Len() > 0 {
		var lb [2]byte
		if _, err := io.ReadFull(inner, lb[:]); err != nil {
			return nil, fmt.Errorf("wire: reading vec-of-string segment length: %w", err)
		}
		segLen := int(binary.LittleEndian.Uint16(lb[:]))
		seg := make([]byte, segLen)
		if _, err := io.ReadFull(inner, seg); err != nil {
			return nil, fmt.Errorf("wire: reading vec-of-string segment: %w", err)
		}
		out = append(out, string(seg))
	}
	return out, nil
}

// --- generic enum codec: every generated enum is `type X int32` ---

func EncodeEnum[T ~int32](buf *bytes.Buffer, v T) {
	writeHeader(buf, TypeEnum, 4)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(int32(v)))
	buf.Write(b[:])
}

// DecodeEnum reads a tagged enum frame and hands the raw int32 to fromInt32,
// which the generated enum's own decode wrapper uses to reject unknown
// discriminants with a message naming the enum and offending value.
func DecodeEnum[T ~int32](r *bytes.Reader, fromInt32 func(int32) (T, error)) (T, error) {
	var zero T
	n, err := readHeader(r, TypeEnum)
	if err != nil {
		return zero, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 4 {
		return zero, err
	}
	return fromInt32(int32(binary.LittleEndian.Uint32(b)))
}

func EncodeMVecEnum[T ~int32](buf *bytes.Buffer, v []T) {
	writeHeader(buf, TypeVecEnum, 4*len(v))
	for _, e := range v {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(int32(e)))
		buf.Write(b[:])
	}
}

func DecodeMVecEnum[T ~int32](r *bytes.Reader, fromInt32 func(int32) (T, error)) ([]T, error) {
	n, err := readHeader(r, TypeVecEnum)
	if err != nil {
		return nil, err
	}
	b, err := readPayload(r, n)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		v, err := fromInt32(int32(binary.LittleEndian.Uint32(b[i:])))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// --- struct framing: field encode/decode is supplied by generated code ---

// EncodeStructFrame writes the TYPE_ID-30 envelope around whatever fields
// are written into the inner buffer passed to writeFields.
func EncodeStructFrame(buf *bytes.Buffer, writeFields func(*bytes.Buffer)) {
	var inner bytes.Buffer
	writeFields(&inner)
	writeHeader(buf, TypeStruct, inner.Len())
	buf.Write(inner.Bytes())
}

// DecodeStructFrame reads the TYPE_ID-30 envelope and hands a reader scoped
// to exactly the struct's payload to readFields.
func DecodeStructFrame(r *bytes.Reader, readFields func(*bytes.Reader) error) error {
	n, err := readHeader(r, TypeStruct)
	if err != nil {
		return err
	}
	payload, err := readPayload(r, n)
	if err != nil {
		return err
	}
	return readFields(bytes.NewReader(payload))
}

// EncodeMVecStructFrame writes the TYPE_ID-31 envelope around n
// independently-framed <len:u16><bytes> struct segments.
func EncodeMVecStructFrame(buf *bytes.Buffer, n int, writeOne func(i int, buf *bytes.Buffer)) {
	var outer bytes.Buffer
	for i := 0; i < n; i++ {
		var inner bytes.Buffer
		writeOne(i, &inner)
		var lb [2]byte
		binary.LittleEndian.PutUint16(lb[:], uint16(inner.Len()))
		outer.Write(lb[:])
		outer.Write(inner.Bytes())
	}
	writeHeader(buf, TypeVecStruct, outer.Len())
	buf.Write(outer.Bytes())
}

// DecodeMVecStructFrame reads the TYPE_ID-31 envelope and invokes readOne
// once per inner segment, scoped to exactly that segment's bytes, until the
// outer payload (sized exactly to the frame's length field) is fully
// consumed.
func DecodeMVecStructFrame(r *bytes.Reader, readOne func(*bytes.Reader) error) error {
	n, err := readHeader(r, TypeVecStruct)
	if err != nil {
		return err
	}
	payload, err := readPayload(r, n)
	if err != nil {
		return err
	}
	outer := bytes.NewReader(payload)
	for outer.Len() > 0 {
		var lb [2]byte
		if _, err := io.ReadFull(outer, lb[:]); err != nil {
			return fmt.Errorf("wire: reading vec-of-struct segment length: %w", err)
		}
		segLen := int(binary.LittleEndian.Uint16(lb[:]))
		seg := make([]byte, segLen)
		if _, err := io.ReadFull(outer, seg); err != nil {
			return fmt.Errorf("wire: reading vec-of-struct segment: %w", err)
		}
		if err := readOne(bytes.NewReader(seg)); err != nil {
			return err
		}
	}
	return nil
}

// --- built-in reserved types ---

// NetworkResult is the device's reserved "network result" type: a
// struct-shaped reference whose internal layout is not part of the
// protocol's public schema. It is carried opaquely.
type NetworkResult struct {
	Raw []byte
}

func EncodeNetworkResult(buf *bytes.Buffer, v NetworkResult) {
	writeHeader(buf, TypeStruct, len(v.Raw))
	buf.Write(v.Raw)
}

func DecodeNetworkResult(r *bytes.Reader) (NetworkResult, error) {
	n, err := readHeader(r, TypeStruct)
	if err != nil {
		return NetworkResult{}, err
	}
	raw, err := readPayload(r, n)
	if err != nil {
		return NetworkResult{}, err
	}
	return NetworkResult{Raw: raw}, nil
}

// ErrorCode is the device's reserved error-code scalar (struct element type
// 33). Introspection does not report its width; it is modeled as a 4-byte
// little-endian signed integer, framed like an enum discriminant. See
// DESIGN.md.
type ErrorCode int32

func EncodeErrorCode(buf *bytes.Buffer, v ErrorCode) {
	writeHeader(buf, TypeErrorCode, 4)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(int32(v)))
	buf.Write(b[:])
}

func DecodeErrorCode(r *bytes.Reader) (ErrorCode, error) {
	n, err := readHeader(r, TypeErrorCode)
	if err != nil {
		return 0, err
	}
	b, err := readPayload(r, n)
	if err != nil || len(b) < 4 {
		return 0, err
	}
	return ErrorCode(int32(binary.LittleEndian.Uint32(b))), nil
}
