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

// Package transport describes the network-facing collaborator that the
// generator consumes but does not implement: the client that performs the
// protocol handshake and request/response multiplexing against a live
// robot. Only the operations the generator calls are specified here; the
// wire handshake, connection pooling, and retry behavior of a concrete
// Client live outside this repository.
package transport

import (
	"context"
	"io"

	"github.com/escalante-bio/piglet-codegen/schema"
)

// Client is the transport-facing API that the generator core consumes. A
// concrete implementation owns the live socket to the robot; this package
// only pins down the shape the core relies on.
type Client interface {
	// Globals enumerates the device's global root object addresses.
	Globals(ctx context.Context) ([]schema.ObjectAddress, error)

	// Objects enumerates additional explicit object roots beyond the
	// globals (e.g. objects named directly by the operator).
	Objects(ctx context.Context) ([]schema.ObjectAddress, error)

	// GetObject fetches the header (name, version, subobject/method counts)
	// for the object at addr.
	GetObject(ctx context.Context, addr schema.ObjectAddress) (*schema.Object, error)

	// GetInterfaces fetches the interface list for addr. This is the one
	// introspection call whose failure is recoverable: a failure here means
	// the object is not inspectable on this device and the caller should
	// emit an "unknown" module rather than abort the run.
	GetInterfaces(ctx context.Context, addr schema.ObjectAddress) ([]schema.Interface, error)

	// GetEnums fetches the enum declarations for one interface of addr.
	GetEnums(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8) ([]schema.EnumDecl, error)

	// GetStructs fetches the struct declarations for one interface of addr.
	GetStructs(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8) ([]schema.StructDecl, error)

	// GetSubobjectAddress fetches the address of the index'th sub-object of
	// addr, for index in [0, subobjectCount).
	GetSubobjectAddress(ctx context.Context, addr schema.ObjectAddress, index uint16) (schema.ObjectAddress, error)

	// GetMethod fetches the methodIndex'th method declaration of addr, for
	// methodIndex in [0, methodCount).
	GetMethod(ctx context.Context, addr schema.ObjectAddress, methodIndex uint32) (*schema.Method, error)

	// Act invokes a remote method: it carries the address, interface id,
	// call type, and method id, followed by a concatenation of tagged
	// argument frames already serialized by the caller. It returns the
	// number of return values the device sent, and a stream from which
	// that many tagged frames can be read in order.
	Act(ctx context.Context, addr schema.ObjectAddress, interfaceID uint8, callType uint8, methodID uint16, payload []byte) (count int, stream io.Reader, err error)

	// Close releases the underlying connection. The generator calls this
	// exactly once, after every other holder of the Client has released
	// its reference (see Shared.Close's shutdown sequencing).
	Close() error
}
