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

package main

import (
	"context"
	"errors"

	"github.com/escalante-bio/piglet-codegen/transport"
)

// dial is the hook a real deployment links in to obtain a live
// transport.Client for address. The transport implementation itself lives
// outside this repository, which specifies only the operations the
// generator calls on transport.Client, not how a connection is
// established. This default always fails so `go run ./cmd/piglet-codegen`
// gives a clear error rather than silently doing nothing; production
// builds replace dial via a build-tag-selected file or by vendoring the
// real transport package's constructor here.
var dial = func(ctx context.Context, address string) (transport.Client, error) {
	return nil, errors.New("no transport implementation linked into this build")
}

func connect(ctx context.Context, address string) (transport.Client, error) {
	return dial(ctx, address)
}
