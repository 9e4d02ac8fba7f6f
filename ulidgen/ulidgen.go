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

// Package ulidgen provides a [requestid.Generator] backed by ULIDs.
//
// A ULID is a 48-bit millisecond Unix timestamp followed by 80 random bits,
// encoded as 26 characters of Crockford base32:
//
//	01ARZ3NDEKTSV4RRFFQ69G5FAV
//
// The alphabet sorts in the same order as the values it encodes, so string
// comparison of two IDs orders them by creation time at millisecond
// resolution. Two IDs created within the same millisecond compare in the
// order of their random parts, which is arbitrary. Use [WithMonotonic] when
// IDs from one generator must also sort within a millisecond.
package ulidgen

import (
	"crypto/rand"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"rivaas.dev/requestid"
)

// Option defines functional options for the ULID generator.
type Option func(*config)

type config struct {
	now       func() time.Time
	monotonic bool
}

func defaultConfig() *config {
	return &config{
		now: time.Now,
	}
}

// WithClock sets the time source used for the timestamp component.
// Default: time.Now
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		cfg.now = now
	}
}

// WithMonotonic makes IDs issued by this generator strictly increasing even
// within one millisecond. The random component of each ID is derived from
// the previous one, so calls are serialized by a mutex.
func WithMonotonic() Option {
	return func(cfg *config) {
		cfg.monotonic = true
	}
}

// Generator issues ULID request identifiers. It is safe for concurrent use
// and never declines.
type Generator struct {
	now     func() time.Time
	entropy io.Reader

	// mu guards entropy when it is stateful.
	mu *sync.Mutex
}

// New returns a ULID generator. By default each ID draws fresh randomness
// from crypto/rand and the generator holds no mutable state.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	g := &Generator{now: cfg.now, entropy: rand.Reader}
	if cfg.monotonic {
		g.entropy = ulid.Monotonic(rand.Reader, 0)
		g.mu = &sync.Mutex{}
	}

	return g
}

// Generate returns a ULID for the current time. It panics if the entropy
// source fails.
func (g *Generator) Generate(_ *http.Request) (requestid.ID, bool) {
	if g.mu != nil {
		// The clock is read under the lock so that serialized calls also
		// see non-decreasing timestamps.
		g.mu.Lock()
		defer g.mu.Unlock()
	}
	ms := ulid.Timestamp(g.now())

	return requestid.Must(ulid.MustNew(ms, g.entropy).String()), true
}
