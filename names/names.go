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

// Package names implements the deterministic mapping from device-provided
// identifiers to target Go identifiers: object/type names become
// PascalCase, struct fields and method parameters become snake_case, enum
// labels (treated as CONSTANT_CASE on the wire) become PascalCase, and
// method names are snake_case at the call site with their PascalCase form
// preserved for synthesized reply-struct names.
//
// The case conversion here is a small, hand-rolled, ASCII-only tokenizer,
// not a general-purpose case-conversion library. The device's identifiers
// are a closed, small vocabulary of ASCII wire names (object, struct, enum
// and method names reported by firmware), so the tokenization rules (split
// on underscores and case boundaries, then reassemble) are exhaustively
// testable without a dependency; see DESIGN.md.
package names

import (
	"strconv"
	"strings"
	"unicode"
)

// tokenize splits an identifier into its constituent words, treating runs of
// uppercase letters, runs of lowercase/digit letters, and underscore/hyphen
// boundaries each as separators. This single tokenizer backs every case
// conversion in this package so that, in particular, TypeName is idempotent:
// re-running it on its own PascalCase output reproduces that output, which
// is required for names like "eMOTIONPROFILE" to normalize in one pass to
// "EMotionprofile" and then remain stable.
func tokenize(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsDigit(r):
			cur = append(cur, r)
		case unicode.IsUpper(r):
			// A new word starts at an uppercase rune unless it continues a
			// run of uppercase letters that is itself followed by a
			// lowercase letter belonging to the NEXT word (e.g. "HTTPServer"
			// -> "HTTP", "Server"), which is detected by looking ahead.
			if len(cur) > 0 {
				prev := cur[len(cur)-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if !unicode.IsUpper(prev) || nextIsLower {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func toPascal(s string) string {
	var b strings.Builder
	for _, w := range tokenize(s) {
		b.WriteString(titleWord(w))
	}
	return b.String()
}

func toSnake(s string) string {
	words := tokenize(s)
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	return strings.Join(lower, "_")
}

// TypeName canonicalises an object or type name into PascalCase. It is
// re-cased from itself (tokenize -> reassemble) rather than treated as a
// no-op on already-Pascal input, so that an irregularly-cased device name
// such as "eMOTIONPROFILE" normalises to "EMotionprofile" rather than being
// passed through verbatim.
func TypeName(raw string) string {
	return toPascal(raw)
}

// FieldName canonicalises a struct field name into snake_case, applying the
// single reserved-word escape the device vocabulary needs: the literal
// field name "Type" maps to "type_".
func FieldName(raw string) string {
	if raw == "Type" {
		return "type_"
	}
	return toSnake(raw)
}

// ParameterName canonicalises a method parameter name into snake_case,
// applying the single reserved-word escape the device vocabulary needs: the
// literal parameter name "type" maps to "type_".
func ParameterName(raw string) string {
	if raw == "type" {
		return "type_"
	}
	return toSnake(raw)
}

// EnumLabel canonicalises an enum label, which the wire format always
// reports in CONSTANT_CASE, into PascalCase.
func EnumLabel(raw string) string {
	return toPascal(strings.ToLower(raw))
}

// MethodCallName canonicalises a method's raw name into the snake_case form
// used at the call site.
func MethodCallName(raw string) string {
	return toSnake(raw)
}

// Disambiguate produces the n unique call-site names for a group of
// methods that share one raw device name: "<name>_<k>" for k = 1..n in
// device-method-id order. Note the caller reuses the FIRST method's shape
// for every synthesized overload, with only the name rewritten; no attempt
// is made to preserve each overload's own parameter shape. That
// shape-sharing is deliberate, documented behavior — see DESIGN.md.
func Disambiguate(rawName string, n int) []string {
	base := MethodCallName(rawName)
	out := make([]string, n)
	for k := 0; k < n; k++ {
		out[k] = base + "_" + strconv.Itoa(k+1)
	}
	return out
}

// DisambiguateReplyName forms the PascalCase reply-struct base name for the
// k'th (1-based) overload of a disambiguated method group: k=1 uses the
// raw, non-suffixed method name; k>=2 uses the suffixed name. Both carry
// the "Reply" suffix, applied by the caller.
func DisambiguateReplyName(rawName string, k int) string {
	if k <= 1 {
		return TypeName(rawName)
	}
	return TypeName(rawName) + "_" + strconv.Itoa(k)
}
