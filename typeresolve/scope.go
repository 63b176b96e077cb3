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

import "github.com/escalante-bio/piglet-codegen/globaltypes"

// Scope is the lexical environment a reference-typed code is resolved
// against: the shared Global index (source tag 1) and the current
// interface's own local enum/struct tables (source tag 2), keyed by the
// 0-based per-interface declaration index the device itself reports.
type Scope struct {
	Global       *globaltypes.Index
	LocalEnums   map[uint8]string
	LocalStructs map[uint8]string
}

// NewScope returns a Scope for one interface's worth of local declarations.
func NewScope(global *globaltypes.Index, localEnums, localStructs map[uint8]string) Scope {
	return Scope{Global: global, LocalEnums: localEnums, LocalStructs: localStructs}
}

// resolveStructRef resolves a struct reference's source tag and 1-based id.
func (s Scope) resolveStructRef(source, id byte) (string, error) {
	switch source {
	case 1:
		name, ok := s.Global.LookupStruct(id)
		if !ok {
			return "", &SchemaError{Msg: "typeresolve: unknown global struct id"}
		}
		return name, nil
	case 2:
		name, ok := s.LocalStructs[id-1]
		if !ok {
			return "", &SchemaError{Msg: "typeresolve: unknown local struct id"}
		}
		return name, nil
	case 3:
		// The reserved built-in is already fully qualified here (rather than
		// a bare type name like every other resolveStructRef result) since it
		// names wire.NetworkResult directly rather than a struct declared
		// somewhere in scope; the Emitter special-cases this exact string to
		// call wire's own Encode/DecodeNetworkResult instead of a generated
		// encode<Name>/decode<Name> pair.
		return "wire.NetworkResult", nil
	default:
		return "", unknownSource(source)
	}
}

// resolveEnumRef resolves an enum reference's source tag and 1-based id.
// Enum references have no reserved built-in source, unlike struct
// references' source 3 == NetworkResult.
func (s Scope) resolveEnumRef(source, id byte) (string, error) {
	switch source {
	case 1:
		name, ok := s.Global.LookupEnum(id)
		if !ok {
			return "", &SchemaError{Msg: "typeresolve: unknown global enum id"}
		}
		return name, nil
	case 2:
		name, ok := s.LocalEnums[id-1]
		if !ok {
			return "", &SchemaError{Msg: "typeresolve: unknown local enum id"}
		}
		return name, nil
	default:
		return "", unknownSource(source)
	}
}
