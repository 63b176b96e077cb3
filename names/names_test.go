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

package names

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"x_positions", "XPositions"},
		{"eMOTIONPROFILE", "EMotionprofile"},
		{"HTTPServer", "HttpServer"},
		{"pump", "Pump"},
		{"liquid_class", "LiquidClass"},
	}
	for _, tc := range tests {
		if got := TypeName(tc.in); got != tc.want {
			t.Errorf("TypeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTypeNameIdempotent(t *testing.T) {
	for _, in := range []string{"x_positions", "eMOTIONPROFILE", "HTTPServer"} {
		once := TypeName(in)
		twice := TypeName(once)
		if once != twice {
			t.Errorf("TypeName(%q) = %q, but TypeName(that) = %q; want idempotent", in, once, twice)
		}
	}
}

func TestFieldNameAndParameterNameReservedWords(t *testing.T) {
	if got := FieldName("Type"); got != "type_" {
		t.Errorf(`FieldName("Type") = %q, want "type_"`, got)
	}
	if got := ParameterName("type"); got != "type_" {
		t.Errorf(`ParameterName("type") = %q, want "type_"`, got)
	}
	if got := FieldName("x_positions"); got != "x_positions" {
		t.Errorf(`FieldName("x_positions") = %q, want "x_positions"`, got)
	}
}

func TestEnumLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"TADM_MODE_NONE", "TadmModeNone"},
		{"COLLET_CHECK_5ML", "ColletCheck5ml"},
		{"SPEED_40G", "Speed40g"},
	}
	for _, tc := range tests {
		if got := EnumLabel(tc.in); got != tc.want {
			t.Errorf("EnumLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisambiguate(t *testing.T) {
	got := Disambiguate("Aspirate", 3)
	want := []string{"aspirate_1", "aspirate_2", "aspirate_3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Disambiguate mismatch (-want +got):\n%s", diff)
	}
}

func TestDisambiguateReplyName(t *testing.T) {
	if got := DisambiguateReplyName("Aspirate", 1); got != "Aspirate" {
		t.Errorf("DisambiguateReplyName(k=1) = %q, want %q", got, "Aspirate")
	}
	if got := DisambiguateReplyName("Aspirate", 2); got != "Aspirate_2" {
		t.Errorf("DisambiguateReplyName(k=2) = %q, want %q", got, "Aspirate_2")
	}
}
