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

package wire

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type demoEnum int32

const (
	demoEnumOne demoEnum = 1
	demoEnumTwo demoEnum = 2
)

func demoEnumFromInt32(v int32) (demoEnum, error) {
	switch demoEnum(v) {
	case demoEnumOne, demoEnumTwo:
		return demoEnum(v), nil
	default:
		return 0, fmt.Errorf("unknown demoEnum discriminant %d", v)
	}
}

func TestPrimitiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EncodeI8(&buf, -5)
	EncodeU8(&buf, 250)
	EncodeI16(&buf, -1000)
	EncodeU16(&buf, 60000)
	EncodeI32(&buf, -70000)
	EncodeU32(&buf, 4000000000)
	EncodeBool(&buf, true)
	EncodeString(&buf, "hello")
	EncodeBytes(&buf, []byte{0xDE, 0xAD})

	r := bytes.NewReader(buf.Bytes())
	if v, err := DecodeI8(r); err != nil || v != -5 {
		t.Fatalf("DecodeI8 = %v, %v", v, err)
	}
	if v, err := DecodeU8(r); err != nil || v != 250 {
		t.Fatalf("DecodeU8 = %v, %v", v, err)
	}
	if v, err := DecodeI16(r); err != nil || v != -1000 {
		t.Fatalf("DecodeI16 = %v, %v", v, err)
	}
	if v, err := DecodeU16(r); err != nil || v != 60000 {
		t.Fatalf("DecodeU16 = %v, %v", v, err)
	}
	if v, err := DecodeI32(r); err != nil || v != -70000 {
		t.Fatalf("DecodeI32 = %v, %v", v, err)
	}
	if v, err := DecodeU32(r); err != nil || v != 4000000000 {
		t.Fatalf("DecodeU32 = %v, %v", v, err)
	}
	if v, err := DecodeBool(r); err != nil || !v {
		t.Fatalf("DecodeBool = %v, %v", v, err)
	}
	if v, err := DecodeString(r); err != nil || v != "hello" {
		t.Fatalf("DecodeString = %v, %v", v, err)
	}
	if v, err := DecodeBytes(r); err != nil || !bytes.Equal(v, []byte{0xDE, 0xAD}) {
		t.Fatalf("DecodeBytes = %v, %v", v, err)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EncodeVecI16(&buf, []int16{1, -2, 3})
	EncodeVecU32(&buf, []uint32{7, 8, 9})
	EncodeVecBool(&buf, []bool{true, false, true})
	EncodeVecString(&buf, []string{"ab", "", "cde"})

	r := bytes.NewReader(buf.Bytes())
	vi16, err := DecodeVecI16(r)
	if err != nil || !cmp.Equal(vi16, []int16{1, -2, 3}) {
		t.Fatalf("DecodeVecI16 = %v, %v", vi16, err)
	}
	vu32, err := DecodeVecU32(r)
	if err != nil || !cmp.Equal(vu32, []uint32{7, 8, 9}) {
		t.Fatalf("DecodeVecU32 = %v, %v", vu32, err)
	}
	vb, err := DecodeVecBool(r)
	if err != nil || !cmp.Equal(vb, []bool{true, false, true}) {
		t.Fatalf("DecodeVecBool = %v, %v", vb, err)
	}
	vs, err := DecodeVecString(r)
	if err != nil || !cmp.Equal(vs, []string{"ab", "", "cde"}) {
		t.Fatalf("DecodeVecString = %v, %v", vs, err)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EncodeEnum(&buf, demoEnumTwo)
	EncodeMVecEnum(&buf, []demoEnum{demoEnumOne, demoEnumTwo, demoEnumOne})

	r := bytes.NewReader(buf.Bytes())
	v, err := DecodeEnum(r, demoEnumFromInt32)
	if err != nil || v != demoEnumTwo {
		t.Fatalf("DecodeEnum = %v, %v", v, err)
	}
	vs, err := DecodeMVecEnum(r, demoEnumFromInt32)
	if err != nil || !cmp.Equal(vs, []demoEnum{demoEnumOne, demoEnumTwo, demoEnumOne}) {
		t.Fatalf("DecodeMVecEnum = %v, %v", vs, err)
	}
}

func TestStructFrameRoundTrip(t *testing.T) {
	type point struct{ X, Y int32 }
	encode := func(buf *bytes.Buffer, p point) {
		EncodeStructFrame(buf, func(inner *bytes.Buffer) {
			EncodeI32(inner, p.X)
			EncodeI32(inner, p.Y)
		})
	}
	decode := func(r *bytes.Reader) (point, error) {
		var out point
		err := DecodeStructFrame(r, func(inner *bytes.Reader) error {
			var err error
			out.X, err = DecodeI32(inner)
			if err != nil {
				return err
			}
			out.Y, err = DecodeI32(inner)
			return err
		})
		return out, err
	}

	var buf bytes.Buffer
	encode(&buf, point{X: 3, Y: -4})
	got, err := decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(point{X: 3, Y: -4}, got); diff != "" {
		t.Errorf("struct frame round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMVecStructFrameRoundTrip(t *testing.T) {
	type point struct{ X, Y int32 }
	pts := []point{{1, 2}, {3, 4}, {5, 6}}

	var buf bytes.Buffer
	EncodeMVecStructFrame(&buf, len(pts), func(i int, inner *bytes.Buffer) {
		EncodeI32(inner, pts[i].X)
		EncodeI32(inner, pts[i].Y)
	})

	var got []point
	err := DecodeMVecStructFrame(bytes.NewReader(buf.Bytes()), func(seg *bytes.Reader) error {
		var p point
		var err error
		p.X, err = DecodeI32(seg)
		if err != nil {
			return err
		}
		p.Y, err = DecodeI32(seg)
		if err != nil {
			return err
		}
		got = append(got, p)
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeMVecStructFrame: %v", err)
	}
	if diff := cmp.Diff(pts, got); diff != "" {
		t.Errorf("mvec struct frame round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNetworkResultAndErrorCodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EncodeNetworkResult(&buf, NetworkResult{Raw: []byte{1, 2, 3}})
	EncodeErrorCode(&buf, ErrorCode(-42))

	r := bytes.NewReader(buf.Bytes())
	nr, err := DecodeNetworkResult(r)
	if err != nil || !bytes.Equal(nr.Raw, []byte{1, 2, 3}) {
		t.Fatalf("DecodeNetworkResult = %v, %v", nr, err)
	}
	ec, err := DecodeErrorCode(r)
	if err != nil || ec != -42 {
		t.Fatalf("DecodeErrorCode = %v, %v", ec, err)
	}
}

func TestDecodeWrongTypeIDReportsFrameError(t *testing.T) {
	var buf bytes.Buffer
	EncodeU32(&buf, 1)
	_, err := DecodeI8(bytes.NewReader(buf.Bytes()))
	fe, ok := err.(*FrameError)
	if !ok {
		t.Fatalf("expected *FrameError, got %T (%v)", err, err)
	}
	if fe.Expected != TypeI8 || fe.Got != TypeU32 {
		t.Errorf("FrameError = %+v, want Expected=%d Got=%d", fe, TypeI8, TypeU32)
	}
}
