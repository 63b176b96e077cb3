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

package methodsort

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/escalante-bio/piglet-codegen/ir"
)

func TestSortInterfaceZeroSortsLast(t *testing.T) {
	methods := []ir.ResolvedMethod{
		{CallName: "generic_info", InterfaceID: 0, MethodID: 1},
		{CallName: "aspirate", InterfaceID: 2, MethodID: 5},
		{CallName: "dispense", InterfaceID: 1, MethodID: 3},
	}
	Sort(methods)

	var order []string
	for _, m := range methods {
		order = append(order, m.CallName)
	}
	want := []string{"dispense", "aspirate", "generic_info"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortOrdersWithinInterfaceByMethodID(t *testing.T) {
	methods := []ir.ResolvedMethod{
		{CallName: "b", InterfaceID: 3, MethodID: 9},
		{CallName: "a", InterfaceID: 3, MethodID: 2},
		{CallName: "c", InterfaceID: 3, MethodID: 100},
	}
	Sort(methods)

	var order []string
	for _, m := range methods {
		order = append(order, m.CallName)
	}
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	methods := []ir.ResolvedMethod{
		{CallName: "aspirate_1", InterfaceID: 2, MethodID: 5},
		{CallName: "aspirate_2", InterfaceID: 2, MethodID: 5},
		{CallName: "aspirate_3", InterfaceID: 2, MethodID: 5},
	}
	Sort(methods)

	var order []string
	for _, m := range methods {
		order = append(order, m.CallName)
	}
	want := []string{"aspirate_1", "aspirate_2", "aspirate_3"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("stable sort order mismatch (-want +got):\n%s", diff)
	}
}
