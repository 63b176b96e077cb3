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

// Package codegen implements the module builder: a depth-first walk over
// global roots and explicit object roots that produces one ir.GeneratedModule
// per distinct prefixed object name, driving type resolution, name
// canonicalisation and method sorting over each newly discovered object.
package codegen

import (
	"context"

	"github.com/escalante-bio/piglet-codegen/globaltypes"
	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/probe"
	"github.com/escalante-bio/piglet-codegen/schema"
)

// workItem is one pending (address, accumulated prefix) pair in the
// explicit depth-first worklist. Using an explicit stack instead of
// recursion lets BuildModules handle arbitrarily deep sub-object trees
// without relying on goroutine stack growth.
type workItem struct {
	addr   schema.ObjectAddress
	prefix string
}

// Result is the ordered output of BuildModules: modules in first-encounter
// order, which is the order the Emitter writes files and the top-level
// manifest lists them in.
type Result struct {
	Modules []*ir.GeneratedModule
}

// BuildModules walks globalRoots then objectRoots depth-first, producing
// one GeneratedModule per distinct prefixed name. A prefixed name
// encountered a second time appends its address to the existing module
// rather than regenerating the body: objects that are instances of the
// same class at different addresses share one type with multiple
// constructors.
func BuildModules(ctx context.Context, p *probe.Probe, global *globaltypes.Index, globalRoots, objectRoots []schema.ObjectAddress) (*Result, error) {
	byName := map[string]*ir.GeneratedModule{}
	var order []string

	visit := func(root schema.ObjectAddress) error {
		stack := []workItem{{addr: root, prefix: ""}}
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			result, err := p.FetchObject(ctx, item.addr)
			if err != nil {
				return err
			}

			typeName := names.TypeName(result.Object.Name)
			prefixed := item.prefix + typeName

			if existing, ok := byName[prefixed]; ok {
				existing.Addresses = append(existing.Addresses, item.addr)
			} else {
				module, err := generateModule(prefixed, result, global)
				if err != nil {
					return err
				}
				byName[prefixed] = module
				order = append(order, prefixed)
			}

			for i := int(result.Object.SubobjectCount) - 1; i >= 0; i-- {
				sub, err := p.Subobject(ctx, item.addr, uint16(i))
				if err != nil {
					return err
				}
				stack = append(stack, workItem{addr: sub, prefix: prefixed})
			}
		}
		return nil
	}

	for _, root := range globalRoots {
		if err := visit(root); err != nil {
			return nil, err
		}
	}
	for _, root := range objectRoots {
		if err := visit(root); err != nil {
			return nil, err
		}
	}

	modules := make([]*ir.GeneratedModule, len(order))
	for i, name := range order {
		modules[i] = byName[name]
	}
	return &Result{Modules: modules}, nil
}
