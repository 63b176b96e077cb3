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

// Package probe translates one schema.ObjectAddress into a fully populated
// object header, interface list, per-interface enum/struct declarations,
// and method signatures, using the introspection RPCs a transport.Client
// exposes.
package probe

import (
	"context"
	"fmt"

	"github.com/escalante-bio/piglet-codegen/schema"
	"github.com/escalante-bio/piglet-codegen/transport"
)

// ProtocolError wraps a fatal failure returned by one of the probe's
// introspection RPCs (every one of them except GetInterfaces, which has its
// own non-fatal path). It implements error and unwraps to the underlying
// cause so callers can use errors.Is/errors.As, following the
// wrapped-single-cause idiom used throughout this repo's error types.
type ProtocolError struct {
	Address schema.ObjectAddress
	Op      string
	Cause   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("probe: %s failed for %s: %v", e.Op, e.Address, e.Cause)
}

func (e *ProtocolError) Unwrap() error { return e.Cause }

// InterfaceData is everything fetched for one interface of an object: the
// enum and struct declarations reported under that interface. Methods are
// not grouped here; they are kept in Result.Methods.
type InterfaceData struct {
	Interface schema.Interface
	Enums     []schema.EnumDecl
	Structs   []schema.StructDecl
}

// Result is the fully populated introspection result for one object.
// Inspectable is false exactly when GetInterfaces failed for this object; in
// that case Interfaces, Methods and every per-interface table are nil and
// the object must be emitted as "unknown".
type Result struct {
	Object      schema.Object
	Inspectable bool
	Interfaces  []InterfaceData
	Methods     []schema.Method
}

// Probe wraps a transport.Client and drives the sequence of introspection
// RPCs required to fully describe one object. All RPCs against a single
// object are issued sequentially, since later calls depend on counts
// reported by earlier ones.
type Probe struct {
	client transport.Client
}

// New returns a Probe driving RPCs through client.
func New(client transport.Client) *Probe {
	return &Probe{client: client}
}

// FetchObject performs the full introspection sequence for addr: the object
// header, then (if inspectable) every interface's id, enums, structs, and
// every method by index.
func (p *Probe) FetchObject(ctx context.Context, addr schema.ObjectAddress) (*Result, error) {
	obj, err := p.client.GetObject(ctx, addr)
	if err != nil {
		return nil, &ProtocolError{Address: addr, Op: "get_object", Cause: err}
	}

	ifaces, err := p.client.GetInterfaces(ctx, addr)
	if err != nil {
		return &Result{Object: *obj, Inspectable: false}, nil
	}

	result := &Result{Object: *obj, Inspectable: true}
	for _, iface := range ifaces {
		enums, err := p.client.GetEnums(ctx, addr, iface.ID)
		if err != nil {
			return nil, &ProtocolError{Address: addr, Op: "get_enums", Cause: err}
		}
		structs, err := p.client.GetStructs(ctx, addr, iface.ID)
		if err != nil {
			return nil, &ProtocolError{Address: addr, Op: "get_structs", Cause: err}
		}
		result.Interfaces = append(result.Interfaces, InterfaceData{
			Interface: iface,
			Enums:     enums,
			Structs:   structs,
		})
	}

	for i := uint32(0); i < obj.MethodCount; i++ {
		m, err := p.client.GetMethod(ctx, addr, i)
		if err != nil {
			return nil, &ProtocolError{Address: addr, Op: "get_method", Cause: err}
		}
		result.Methods = append(result.Methods, *m)
	}

	return result, nil
}

// Subobject resolves the index'th sub-object address of addr.
func (p *Probe) Subobject(ctx context.Context, addr schema.ObjectAddress, index uint16) (schema.ObjectAddress, error) {
	sub, err := p.client.GetSubobjectAddress(ctx, addr, index)
	if err != nil {
		return schema.ObjectAddress{}, &ProtocolError{Address: addr, Op: "get_subobject_address", Cause: err}
	}
	return sub, nil
}
