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

package emit

import "unicode"

// exported capitalizes only the first rune of a canonical snake_case
// identifier, keeping the remainder untouched, so the result is both a
// valid exported Go identifier and a literal match for the device-derived
// snake_case field name (e.g. "x_positions" -> "X_positions").
func exported(snake string) string {
	if snake == "" {
		return snake
	}
	r := []rune(snake)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
