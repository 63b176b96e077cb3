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

import "fmt"

// ConnectError wraps a failure to establish the initial connection to the
// robot. It is always surfaced with the "Error connecting to robot"
// context.
type ConnectError struct {
	Address string
	Cause   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("Error connecting to robot %s: %v", e.Address, e.Cause)
}

func (e *ConnectError) Unwrap() error { return e.Cause }

// CallError decorates a failed or malformed Act invocation with the fully
// qualified method name and a dump of every argument.
type CallError struct {
	Context string
	Cause   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

func (e *CallError) Unwrap() error { return e.Cause }

// ArityError reports that an Act response carried a different number of
// values than the generated caller expected. Its message form is
// "Expected K values, not N".
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Expected %d values, not %d", e.Expected, e.Got)
}

// WithContext wraps a non-nil err in a CallError whose context string is
// produced lazily by contextFn, so that formatting the argument dump is
// skipped entirely on the success path. Returns nil unchanged.
func WithContext(err error, contextFn func() string) error {
	if err == nil {
		return nil
	}
	return &CallError{Context: contextFn(), Cause: err}
}
