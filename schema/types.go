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

// Package schema defines the data model of the device's self-describing
// object tree as it is reported over the wire: object addresses, object
// headers, interfaces, enum and struct declarations, and method signatures.
// These types are intentionally "raw" — they carry the device's own
// identifiers and type-code streams unresolved. Resolving them into a
// canonical, Go-native representation is the job of package typeresolve and
// package ir, not this package.
package schema

import "fmt"

// ObjectAddress identifies one remote object on the device. It is comparable
// by value and is used directly as a map key throughout the generator.
type ObjectAddress struct {
	ModuleID uint16
	NodeID   uint16
	ObjectID uint16
}

func (a ObjectAddress) String() string {
	return fmt.Sprintf("ObjectAddress{ModuleID: %d, NodeID: %d, ObjectID: %d}", a.ModuleID, a.NodeID, a.ObjectID)
}

// Object is the header fetched for a single addressable entity on the
// device.
type Object struct {
	Name           string
	Version        string
	SubobjectCount uint16
	MethodCount    uint32
	Address        ObjectAddress
}

// Interface is a numbered grouping of methods/enums/structs within one
// object. Interface 0 carries the generic introspection methods present on
// every object and is always sorted last by the Method Sorter.
type Interface struct {
	ID uint8
}

// EnumDecl is a device-reported enumeration: a name plus parallel label and
// value sequences. The wire representation of every enum value is a 32-bit
// signed integer inside a tagged frame (type_id 32), regardless of how few
// bits the declared values actually need.
type EnumDecl struct {
	Name   string
	Labels []string
	Values []int32
}

// StructDecl is a device-reported fixed-layout struct: a name, the ordered
// field labels, and the raw element-type code stream. The code stream must
// be walked with a cursor, since reference-typed elements (type_id 30/31/32/35)
// occupy three bytes (tag, source, id) while every other element type
// occupies exactly one.
type StructDecl struct {
	Name          string
	ElementLabels []string
	ElementTypes  []byte
}

// Method is a device-reported remote method signature. ParameterTypes is a
// code stream consumed with the same cursor discipline as StructDecl's
// ElementTypes, but the code space is disjoint: a struct-field code and a
// method-parameter code that happen to share a numeric value mean different
// things (see typeresolve).
type Method struct {
	Name            string
	InterfaceID     uint8
	MethodID        uint16
	CallType        uint8
	ParameterLabels []string
	ParameterTypes  []byte
}

// EnumRef identifies a per-interface enum declaration by its position within
// that interface's enum list, as reported by the device (0-based).
type EnumRef struct {
	InterfaceID uint8
	EnumIndex   uint8
}

// StructRef identifies a per-interface struct declaration by its position
// within that interface's struct list, as reported by the device (0-based).
type StructRef struct {
	InterfaceID uint8
	StructIndex uint8
}
