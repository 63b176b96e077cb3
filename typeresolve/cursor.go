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

import "fmt"

// SchemaError reports a fatal, generator-side failure to resolve a type
// code: an unknown code, an unknown reference source tag, or an invariant
// violation in the struct element cursor. Unknown codes are always fatal
// and the message always names the offending code.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return e.Msg }

func unknownCode(kind string, code byte) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf("typeresolve: unknown %s type code %d", kind, code)}
}

func unknownSource(source byte) *SchemaError {
	return &SchemaError{Msg: fmt.Sprintf("typeresolve: unknown reference source tag %d", source)}
}

// Cursor walks a raw device type-code stream (a schema.StructDecl's
// ElementTypes or a schema.Method's ParameterTypes), tracking how far it
// has advanced so the caller can verify the stream was consumed exactly
// after a full struct or method has been resolved.
type Cursor struct {
	bytes []byte
	pos   int
}

// NewCursor wraps raw in a fresh Cursor positioned at the start.
func NewCursor(raw []byte) *Cursor {
	return &Cursor{bytes: raw}
}

// Pos reports how many bytes have been consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Len reports the total length of the underlying stream.
func (c *Cursor) Len() int { return len(c.bytes) }

// Done reports whether every byte of the stream has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.bytes) }

func (c *Cursor) readByte() (byte, error) {
	if c.pos >= len(c.bytes) {
		return 0, &SchemaError{Msg: "typeresolve: type-code stream exhausted"}
	}
	b := c.bytes[c.pos]
	c.pos++
	return b, nil
}

// readRef consumes the two bytes following a reference-bearing code: the
// source tag and the 1-based id.
func (c *Cursor) readRef() (source, id byte, err error) {
	source, err = c.readByte()
	if err != nil {
		return 0, 0, err
	}
	id, err = c.readByte()
	if err != nil {
		return 0, 0, err
	}
	return source, id, nil
}
