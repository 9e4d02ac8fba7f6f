// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uuidgen provides a [requestid.Generator] backed by UUIDs.
//
// [New] returns random version 4 UUIDs: 122 bits of entropy drawn from
// crypto/rand on every call, rendered in the canonical 36-character form
//
//	9b2c0e4a-5d1f-4c7e-8a3b-2f6d1e0c9a47
//
// [NewV7] returns version 7 UUIDs, which prefix the random bits with a
// millisecond timestamp so IDs sort by creation time.
//
// Both generators are stateless and safe for concurrent use. They never
// decline.
package uuidgen

import (
	"net/http"

	"github.com/google/uuid"

	"rivaas.dev/requestid"
)

// Generator issues UUID request identifiers.
type Generator struct {
	newUUID func() (uuid.UUID, error)
}

// New returns a generator of random (version 4) UUIDs.
func New() *Generator {
	return &Generator{newUUID: uuid.NewRandom}
}

// NewV7 returns a generator of time-ordered (version 7) UUIDs.
func NewV7() *Generator {
	return &Generator{newUUID: uuid.NewV7}
}

// Generate returns a fresh UUID. It panics if the system entropy source
// fails.
func (g *Generator) Generate(_ *http.Request) (requestid.ID, bool) {
	return requestid.Must(uuid.Must(g.newUUID()).String()), true
}
