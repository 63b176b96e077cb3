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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/schema"
)

func TestModuleRendersConstructorsStructsAndMethods(t *testing.T) {
	m := &ir.GeneratedModule{
		Name:      "Pump",
		Addresses: []schema.ObjectAddress{{ModuleID: 1, NodeID: 2, ObjectID: 3}},
		Version:   "1.0",
		Enums: []ir.ResolvedEnum{
			{Name: "Direction", Labels: []string{"Forward", "Reverse"}, Values: []int32{0, 1}},
		},
		Structs: []ir.ResolvedStruct{
			{Name: "Config", Fields: []ir.ResolvedField{
				{Name: "x_positions", Type: ir.TypeExpr{Kind: ir.KindVecPrimitive, Primitive: ir.PrimI32}},
			}},
		},
		Methods: []ir.ResolvedMethod{
			{
				CallName:    "aspirate",
				ReplyName:   "Aspirate",
				InterfaceID: 1,
				MethodID:    5,
				CallType:    2,
				Arguments: []ir.Parameter{
					{Name: "volume", Type: ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimI32}},
				},
				ReturnValues: []ir.Parameter{
					{Name: "status", Type: ir.TypeExpr{Kind: ir.KindStructRef, RefName: "wire.NetworkResult"}},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Module(&buf, m, "pump_pkg"))
	out := buf.String()

	assert.Contains(t, out, "package pump_pkg")
	assert.Contains(t, out, "func NewPump(client transport.Client) *Pump {")
	assert.Contains(t, out, "type Direction int32")
	assert.Contains(t, out, "type Config struct {")
	assert.Contains(t, out, "func (o *Pump) aspirate(ctx context.Context, volume int32) (wire.NetworkResult, error) {")
	assert.Contains(t, out, "wire.DecodeNetworkResult", "NetworkResult return value must call the wire package's own codec, not a fabricated decodeNetworkResult")
	assert.NotContains(t, out, "encodewire.NetworkResult")
	assert.NotContains(t, out, "decodewire.NetworkResult")
}

// TestModuleZeroReturnMethodReturnsBareError: a method with no return
// elements or values compiles down to `func (...) error`, never touches
// the response stream, and still checks the response arity.
func TestModuleZeroReturnMethodReturnsBareError(t *testing.T) {
	m := &ir.GeneratedModule{
		Name:      "Foo",
		Addresses: []schema.ObjectAddress{{ModuleID: 1, NodeID: 1, ObjectID: 1}},
		Methods: []ir.ResolvedMethod{
			{
				CallName:    "do_thing",
				ReplyName:   "DoThing",
				InterfaceID: 1,
				MethodID:    42,
				CallType:    3,
				Arguments: []ir.Parameter{
					{Name: "x", Type: ir.TypeExpr{Kind: ir.KindPrimitive, Primitive: ir.PrimI32}},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Module(&buf, m, "foo_pkg"))
	out := buf.String()

	assert.Contains(t, out, "func (o *Foo) do_thing(ctx context.Context, x int32) error {")
	assert.Contains(t, out, "wire.EncodeI32(&args, x)")
	assert.Contains(t, out, "count, _, err := o.Client.Act(ctx, o.Address, 1, 3, 42, args.Bytes())")
	assert.Contains(t, out, "if count != 0 {")
	assert.NotContains(t, out, "io.ReadAll", "a zero-return method must not read the response stream")
	assert.Contains(t, out, "\treturn nil\n}")
}

func TestModuleAggregatedAddressesGetNumberedConstructors(t *testing.T) {
	m := &ir.GeneratedModule{
		Name: "Pump",
		Addresses: []schema.ObjectAddress{
			{ModuleID: 1, NodeID: 1, ObjectID: 1},
			{ModuleID: 1, NodeID: 1, ObjectID: 2},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, Module(&buf, m, "pump_pkg"))
	out := buf.String()
	assert.True(t, strings.Contains(out, "func NewPump_1(client transport.Client) *Pump {"))
	assert.True(t, strings.Contains(out, "func NewPump_2(client transport.Client) *Pump {"))
}

func TestManifestListsGeneratedFilesInOrder(t *testing.T) {
	modules := []*ir.GeneratedModule{{Name: "Deck"}, {Name: "DeckPump"}}
	var buf bytes.Buffer
	require.NoError(t, Manifest(&buf, "robot", modules))
	out := buf.String()
	assert.Contains(t, out, `"deck.go"`)
	assert.Contains(t, out, `"deck_pump.go"`)
}

func TestExportedCapitalizesOnlyFirstRune(t *testing.T) {
	assert.Equal(t, "X_positions", exported("x_positions"))
	assert.Equal(t, "Type_", exported("type_"))
}
