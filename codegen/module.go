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

package codegen

import (
	"fmt"

	"github.com/escalante-bio/piglet-codegen/globaltypes"
	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/methodsort"
	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/probe"
	"github.com/escalante-bio/piglet-codegen/schema"
	"github.com/escalante-bio/piglet-codegen/typeresolve"
)

// generateModule runs the Type Resolver, Name Canonicaliser and Method
// Sorter over one freshly discovered object, producing its GeneratedModule.
// It is only called the first time a prefixed name is encountered.
func generateModule(prefixedName string, result *probe.Result, global *globaltypes.Index) (*ir.GeneratedModule, error) {
	module := &ir.GeneratedModule{
		Name:      prefixedName,
		Addresses: []schema.ObjectAddress{result.Object.Address},
		Version:   result.Object.Version,
	}

	if !result.Inspectable {
		module.Unknown = true
		return module, nil
	}

	localEnumsByIface := map[uint8]map[uint8]string{}
	localStructsByIface := map[uint8]map[uint8]string{}

	// Pass 1: enum declarations. Enums carry no type-code stream to
	// resolve, so their local name tables can be built upfront, in
	// interface order, before any struct or method resolution runs.
	for _, ifaceData := range result.Interfaces {
		localMap := map[uint8]string{}
		for idx, e := range ifaceData.Enums {
			typeName := names.TypeName(e.Name)
			localMap[uint8(idx)] = typeName
			module.Enums = append(module.Enums, ir.ResolvedEnum{
				Name:   typeName,
				Labels: labelsToPascal(e.Labels),
				Values: e.Values,
			})
		}
		localEnumsByIface[ifaceData.Interface.ID] = localMap
	}

	// Pass 2: struct declarations. Each struct's canonical name is
	// registered in its interface's local table before its own fields are
	// resolved, so a struct may reference itself or an earlier struct
	// declared under the same interface.
	for _, ifaceData := range result.Interfaces {
		localStructs := map[uint8]string{}
		localStructsByIface[ifaceData.Interface.ID] = localStructs

		for idx, s := range ifaceData.Structs {
			typeName := names.TypeName(s.Name)
			localStructs[uint8(idx)] = typeName

			scope := typeresolve.NewScope(global, localEnumsByIface[ifaceData.Interface.ID], localStructs)
			fields, err := typeresolve.Struct(s, scope)
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", prefixedName, err)
			}
			module.Structs = append(module.Structs, ir.ResolvedStruct{Name: typeName, Fields: fields})
		}
	}

	// Pass 3: methods, grouped by raw device name in encounter order (the
	// order GetMethod reports them, 0..method_count) to match disambiguation.
	groups := map[string][]schema.Method{}
	var groupOrder []string
	for _, m := range result.Methods {
		if _, ok := groups[m.Name]; !ok {
			groupOrder = append(groupOrder, m.Name)
		}
		groups[m.Name] = append(groups[m.Name], m)
	}

	for _, rawName := range groupOrder {
		group := groups[rawName]
		scope := typeresolve.NewScope(global, localEnumsByIface[group[0].InterfaceID], localStructsByIface[group[0].InterfaceID])
		resolved, err := typeresolve.Method(group[0], scope)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", prefixedName, err)
		}

		n := len(group)
		if n == 1 {
			module.Methods = append(module.Methods, buildResolvedMethod(group[0], names.MethodCallName(rawName), names.TypeName(rawName), resolved))
			continue
		}

		callNames := names.Disambiguate(rawName, n)
		for k := 0; k < n; k++ {
			replyName := names.DisambiguateReplyName(rawName, k+1)
			module.Methods = append(module.Methods, buildResolvedMethod(group[0], callNames[k], replyName, resolved))
		}
	}

	methodsort.Sort(module.Methods)
	return module, nil
}

// buildResolvedMethod assembles an ir.ResolvedMethod from the call
// metadata of m (interface/method id, call type) and an already-resolved
// parameter set. When a method name is disambiguated across n overloads,
// every overload copies m's interface id, method id, call type, and
// parameter shape verbatim, renaming only the call-site and reply-struct
// names; this function is called once per overload with the same
// (m, resolved) pair and a distinct callName/replyName, producing exactly
// that behavior. See DESIGN.md for why the shape-sharing is deliberate.
func buildResolvedMethod(m schema.Method, callName, replyName string, resolved typeresolve.ResolvedParameters) ir.ResolvedMethod {
	return ir.ResolvedMethod{
		CallName:       callName,
		ReplyName:      replyName,
		InterfaceID:    m.InterfaceID,
		MethodID:       m.MethodID,
		CallType:       m.CallType,
		Arguments:      resolved.Arguments,
		ReturnElements: resolved.ReturnElements,
		ReturnValues:   resolved.ReturnValues,
	}
}

func labelsToPascal(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = names.EnumLabel(l)
	}
	return out
}
