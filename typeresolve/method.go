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

package typeresolve

import (
	"fmt"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/names"
	"github.com/escalante-bio/piglet-codegen/schema"
)

// ResolvedParameters is the per-method output of resolving a method's raw
// parameter-type stream: its arguments, return elements, and return values,
// each with canonical snake_case names and, as returned by Method, the
// post-resolution demotion rule already applied, but before any call-site
// disambiguation (applied later by package codegen, in the order the
// device reports the methods).
type ResolvedParameters struct {
	Arguments      []ir.Parameter
	ReturnElements []ir.Parameter
	ReturnValues   []ir.Parameter
}

// Method resolves every parameter of m against scope, applies the
// post-resolution return-role rules (return values are demoted to return
// elements when elements are also present; more than one return value with
// no elements is a fatal schema error), and verifies the cursor consumed
// exactly one logical step per parameter label (plus two for each
// reference-typed one).
func Method(m schema.Method, scope Scope) (ResolvedParameters, error) {
	cursor := NewCursor(m.ParameterTypes)
	var out ResolvedParameters

	for i, label := range m.ParameterLabels {
		param, err := ResolveMethodParameter(cursor, scope)
		if err != nil {
			return ResolvedParameters{}, fmt.Errorf("method %q parameter %d (%s): %w", m.Name, i, label, err)
		}
		param.Name = names.ParameterName(label)
		switch param.Role {
		case ir.RoleArgument:
			out.Arguments = append(out.Arguments, param)
		case ir.RoleReturnElement:
			out.ReturnElements = append(out.ReturnElements, param)
		case ir.RoleReturnValue:
			out.ReturnValues = append(out.ReturnValues, param)
		}
	}

	if !cursor.Done() {
		return ResolvedParameters{}, &SchemaError{Msg: fmt.Sprintf(
			"method %q: parameter-type cursor consumed %d of %d bytes", m.Name, cursor.Pos(), cursor.Len())}
	}

	if len(out.ReturnValues) > 0 {
		if len(out.ReturnElements) > 0 {
			for i := range out.ReturnValues {
				out.ReturnValues[i].Role = ir.RoleReturnElement
			}
			out.ReturnElements = append(out.ReturnElements, out.ReturnValues...)
			out.ReturnValues = nil
		} else if len(out.ReturnValues) > 1 {
			return ResolvedParameters{}, &SchemaError{Msg: fmt.Sprintf(
				"method %q: %d return values with no return elements", m.Name, len(out.ReturnValues))}
		}
	}

	return out, nil
}
