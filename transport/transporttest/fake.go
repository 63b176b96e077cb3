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

// Package transporttest provides an in-memory fake of transport.Client for
// use in tests of probe, globaltypes and codegen, without requiring a
// live robot connection.
package transporttest

import (
	"context"
	"fmt"
	"io"

	"github.com/escalante-bio/piglet-codegen/schema"
)

// ObjectFixture is the scripted introspection data for one object address.
type ObjectFixture struct {
	Object             schema.Object
	Interfaces         []schema.Interface
	InterfacesErr      error
	EnumsByInterface   map[uint8][]schema.EnumDecl
	StructsByInterface map[uint8][]schema.StructDecl
	Methods            []schema.Method
	Subobjects         []schema.ObjectAddress
}

// ActCall records one invocation of Act for assertions in tests.
type ActCall struct {
	Address     schema.ObjectAddress
	InterfaceID uint8
	CallType    uint8
	MethodID    uint16
	Payload     []byte
}

// ActResponse is the scripted response to an Act call: the count of values
// and their already-framed wire bytes.
type ActResponse struct {
	Count int
	Bytes []byte
	Err   error
}

// Fake is a scripted implementation of transport.Client.
type Fake struct {
	Globs    []schema.ObjectAddress
	Roots    []schema.ObjectAddress
	Fixtures map[schema.ObjectAddress]*ObjectFixture

	// ActResponses is keyed by (interfaceID, methodID) since a single
	// fixture object may expose several methods to exercise in one test.
	ActResponses map[[2]uint16]ActResponse
	ActCalls     []ActCall

	Closed bool
}

// New returns an empty Fake ready to be populated via With* helpers.
func New() *Fake {
	return &Fake{Fixtures: map[schema.ObjectAddress]*ObjectFixture{}, ActResponses: map[[2]uint16]ActResponse{}}
}

// WithGlobalRoot registers addr as a global root with the given fixture.
func (f *Fake) WithGlobalRoot(addr schema.ObjectAddress, fx *ObjectFixture) *Fake {
	f.Globs = append(f.Globs, addr)
	f.Fixtures[addr] = fx
	return f
}

// WithObjectRoot registers addr as an explicit (non-global) root.
func (f *Fake) WithObjectRoot(addr schema.ObjectAddress, fx *ObjectFixture) *Fake {
	f.Roots = append(f.Roots, addr)
	f.Fixtures[addr] = fx
	return f
}

// WithSubobject registers fx as the fixture for a sub-object reachable from
// some already-registered parent; it does not itself wire the parent-child
// edge, which is done via ObjectFixture.Subobjects.
func (f *Fake) WithSubobject(addr schema.ObjectAddress, fx *ObjectFixture) *Fake {
	f.Fixtures[addr] = fx
	return f
}

// WithAct registers the response to Act for the given interface/method pair.
func (f *Fake) WithAct(interfaceID uint8, methodID uint16, resp ActResponse) *Fake {
	f.ActResponses[[2]uint16{uint16(interfaceID), methodID}] = resp
	return f
}

func (f *Fake) Globals(ctx context.Context) ([]schema.ObjectAddress, error) { return f.Globs, nil }
func (f *Fake) Objects(ctx context.Context) ([]schema.ObjectAddress, error) { return f.Roots, nil }

func (f *Fake) fixture(addr schema.ObjectAddress) (*ObjectFixture, error) {
	fx, ok := f.Fixtures[addr]
	if !ok {
		return nil, fmt.Errorf("transporttest: no fixture registered for %s", addr)
	}
	return fx, nil
}

func (f *Fake) GetObject(ctx context.Context, addr schema.ObjectAddress) (*schema.Object, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return nil, err
	}
	obj := fx.Object
	obj.Address = addr
	return &obj, nil
}

func (f *Fake) GetInterfaces(ctx context.Context, addr schema.ObjectAddress) ([]schema.Interface, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return nil, err
	}
	if fx.InterfacesErr != nil {
		return nil, fx.InterfacesErr
	}
	return fx.Interfaces, nil
}

func (f *Fake) GetEnums(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8) ([]schema.EnumDecl, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return nil, err
	}
	return fx.EnumsByInterface[interfaceID], nil
}

func (f *Fake) GetStructs(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8) ([]schema.StructDecl, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return nil, err
	}
	return fx.StructsByInterface[interfaceID], nil
}

func (f *Fake) GetSubobjectAddress(ctx context.Context, addr schema.ObjectAddress, index uint16) (schema.ObjectAddress, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return schema.ObjectAddress{}, err
	}
	if int(index) >= len(fx.Subobjects) {
		return schema.ObjectAddress{}, fmt.Errorf("transporttest: subobject index %d out of range for %s", index, addr)
	}
	return fx.Subobjects[index], nil
}

func (f *Fake) GetMethod(ctx context.Context, addr schema.ObjectAddress, methodIndex uint32) (*schema.Method, error) {
	fx, err := f.fixture(addr)
	if err != nil {
		return nil, err
	}
	if int(methodIndex) >= len(fx.Methods) {
		return nil, fmt.Errorf("transporttest: method index %d out of range for %s", methodIndex, addr)
	}
	m := fx.Methods[methodIndex]
	return &m, nil
}

func (f *Fake) Act(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8, callType uint8, methodID uint16, payload []byte) (int, io.Reader, error) {
	f.ActCalls = append(f.ActCalls, ActCall{Address: addr, InterfaceID: interfaceID, CallType: callType, MethodID: methodID, Payload: payload})
	resp, ok := f.ActResponses[[2]uint16{uint16(interfaceID), methodID}]
	if !ok {
		return 0, nil, fmt.Errorf("transporttest: no Act response registered for interface %d method %d", interfaceID, methodID)
	}
	if resp.Err != nil {
		return 0, nil, resp.Err
	}
	return resp.Count, bytesReader(resp.Bytes), nil
}

func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

type sliceReader struct {
	b []byte
}

func (r *sliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

func bytesReader(b []byte) io.Reader { return &sliceReader{b: b} }
