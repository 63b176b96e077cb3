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

// Package methodsort establishes a deterministic total order over a
// module's resolved methods so the emitted file is stable across runs.
package methodsort

import (
	"sort"

	"github.com/escalante-bio/piglet-codegen/ir"
)

// bucket computes the sort key: interface-0 methods (the generic
// introspection interface) sort after every other interface's methods,
// each bucket ordered by method id.
func bucket(m ir.ResolvedMethod) uint32 {
	if m.InterfaceID == 0 {
		return 0x100000 | uint32(m.MethodID)
	}
	return uint32(m.InterfaceID)<<10 | uint32(m.MethodID)
}

// Sort orders methods in place by the (bucket, method_id) key, stably with
// respect to insertion order for any (there should be none, after
// disambiguation) equal keys.
func Sort(methods []ir.ResolvedMethod) {
	sort.SliceStable(methods, func(i, j int) bool {
		bi, bj := bucket(methods[i]), bucket(methods[j])
		if bi != bj {
			return bi < bj
		}
		return methods[i].MethodID < methods[j].MethodID
	})
}
