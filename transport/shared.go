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

package transport

import (
	"fmt"
	"sync/atomic"
)

// Shared is a reference-counted handle around a Client enforcing the
// generator's shutdown sequencing: the generator drops its own handle,
// then reclaims unique ownership of the transport client to close it; if
// any other clone is still alive at that point, shutdown fails with an
// error instead of closing a connection someone still holds.
type Shared struct {
	Client
	refs atomic.Int32
}

// NewShared wraps client in a Shared holding one reference (the caller's).
func NewShared(client Client) *Shared {
	s := &Shared{Client: client}
	s.refs.Store(1)
	return s
}

// Retain adds a reference and returns the same handle.
func (s *Shared) Retain() *Shared {
	s.refs.Add(1)
	return s
}

// Release drops one reference. It does not close the underlying client;
// that is Close's job, and only once ownership is unique.
func (s *Shared) Release() {
	s.refs.Add(-1)
}

// Close verifies the caller holds the only remaining reference, then closes
// the underlying client. It overrides the embedded Client.Close so a Shared
// used as a plain Client still gets the uniqueness check.
func (s *Shared) Close() error {
	if n := s.refs.Load(); n > 1 {
		return fmt.Errorf("transport: cannot close, %d other handles still alive", n-1)
	}
	return s.Client.Close()
}
