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

// Package globaltypes builds the global type index: the single flat table of
// every enum and struct declared under any global-root object, keyed by
// insertion order rather than the device's own per-interface numbering.
// It is built once, before the module builder runs, and is never mutated
// afterward.
package globaltypes

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/probe"
	"github.com/escalante-bio/piglet-codegen/schema"
)

// Index is the outer lexical scope consulted when a struct element or
// method parameter carries source tag 1 ("global").
type Index struct {
	// Enums and Structs map an insertion-order key (0, 1, 2, ...) to the
	// already-canonicalised (PascalCase) type name. The key is NOT the
	// device's own enum/struct index within its interface; it is assigned
	// purely by insertion order across every global root. Lookups by a
	// downstream reference id must use this same synthetic numbering.
	Enums   map[uint8]string
	Structs map[uint8]string

	// Imports lists every "<module>::<TypeName>"-equivalent entry in
	// global-scan order. The Emitter does not read it: every generated file
	// shares one package, so no module imports another.
	Imports []string
}

// Build probes every root in roots (the global roots) and accumulates their
// enum and struct declarations into a single flat Index. moduleNameOf
// canonicalises an object's raw name into the snake_case module/file name
// its declarations are attributed to in Imports.
func Build(ctx context.Context, roots []schema.ObjectAddress, p *probe.Probe, moduleNameOf func(string) string) (*Index, error) {
	// The introspection RPCs for distinct global roots are independent, so
	// fan them out concurrently; the insertion-order merge below stays
	// strictly sequential over roots so the resulting index keys remain
	// deterministic regardless of which RPC happens to land first.
	results := make([]*probe.Result, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			result, err := p.FetchObject(gctx, root)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := &Index{Enums: map[uint8]string{}, Structs: map[uint8]string{}}

	for _, result := range results {
		if !result.Inspectable {
			// A global root that cannot be introspected contributes no
			// global types; it is still emitted later as an "unknown"
			// module by the module builder.
			continue
		}
		module := moduleNameOf(names.TypeName(result.Object.Name))

		for _, ifaceData := range result.Interfaces {
			for _, e := range ifaceData.Enums {
				typeName := names.TypeName(e.Name)
				idx.Enums[uint8(len(idx.Enums))] = typeName
				idx.Imports = append(idx.Imports, module+"::"+typeName)
			}
			for _, s := range ifaceData.Structs {
				typeName := names.TypeName(s.Name)
				idx.Structs[uint8(len(idx.Structs))] = typeName
				idx.Imports = append(idx.Imports, module+"::"+typeName)
			}
		}
	}

	return idx, nil
}

// LookupEnum resolves a 1-based global enum reference id.
func (idx *Index) LookupEnum(id uint8) (string, bool) {
	name, ok := idx.Enums[id-1]
	return name, ok
}

// LookupStruct resolves a 1-based global struct reference id.
func (idx *Index) LookupStruct(id uint8) (string, bool) {
	name, ok := idx.Structs[id-1]
	return name, ok
}
