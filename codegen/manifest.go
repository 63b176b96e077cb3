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
	"encoding/json"
	"io"

	"github.com/escalante-bio/piglet-codegen/ir"
)

// ManifestEntry is one module's line in the optional machine-readable
// generation manifest: its name, the firmware version string its object
// header reported, and how many addresses were aggregated under it.
type ManifestEntry struct {
	Module       string `json:"module"`
	Version      string `json:"version,omitempty"`
	AddressCount int    `json:"address_count"`
	Unknown      bool   `json:"unknown,omitempty"`
}

// WriteManifest serializes one ManifestEntry per module, in Module Builder
// encounter order, as indented JSON. It backs the CLI's optional
// --manifest_file sidecar output.
func WriteManifest(w io.Writer, modules []*ir.GeneratedModule) error {
	entries := make([]ManifestEntry, len(modules))
	for i, m := range modules {
		entries[i] = ManifestEntry{
			Module:       m.Name,
			Version:      m.Version,
			AddressCount: len(m.Addresses),
			Unknown:      m.Unknown,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
