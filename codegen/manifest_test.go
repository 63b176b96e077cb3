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

package codegen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/escalante-bio/piglet-codegen/ir"
	"github.com/escalante-bio/piglet-codegen/schema"
)

func TestWriteManifest(t *testing.T) {
	modules := []*ir.GeneratedModule{
		{
			Name:    "NimbusCore",
			Version: "2.17",
			Addresses: []schema.ObjectAddress{
				{ModuleID: 1, NodeID: 1, ObjectID: 1},
			},
		},
		{
			Name: "NimbusCoreChannel",
			Addresses: []schema.ObjectAddress{
				{ModuleID: 1, NodeID: 1, ObjectID: 272},
				{ModuleID: 1, NodeID: 1, ObjectID: 273},
			},
		},
		{
			Name:      "Mystery",
			Addresses: []schema.ObjectAddress{{ModuleID: 1, NodeID: 1, ObjectID: 9}},
			Unknown:   true,
		},
	}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, modules); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	var got []ManifestEntry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshalling manifest: %v", err)
	}
	want := []ManifestEntry{
		{Module: "NimbusCore", Version: "2.17", AddressCount: 1},
		{Module: "NimbusCoreChannel", AddressCount: 2},
		{Module: "Mystery", AddressCount: 1, Unknown: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}
