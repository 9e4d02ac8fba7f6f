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

package requestid

import (
	"net/http"
	"strconv"
	"sync/atomic"
)

// CounterOption configures a [Counter].
type CounterOption func(*counterConfig)

type counterConfig struct {
	start uint64
}

// WithStart sets the first value issued by the counter.
// Default: 0
func WithStart(n uint64) CounterOption {
	return func(cfg *counterConfig) {
		cfg.start = n
	}
}

// Counter issues decimal identifiers from a process-local sequence.
//
// Every copy of a Counter, and every handle returned by [Counter.Clone],
// shares one underlying sequence. Across all of them the issued values are
// start, start+1, start+2, ... with no gaps and no repeats, regardless of
// how many goroutines call Generate. The sequence wraps to 0 after
// math.MaxUint64 and is not preserved across process restarts.
//
// The zero value is not usable; construct with [NewCounter].
type Counter struct {
	next *atomic.Uint64
}

// NewCounter returns a Counter whose first identifier is "0", or the value
// set with [WithStart].
func NewCounter(opts ...CounterOption) *Counter {
	cfg := &counterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	next := new(atomic.Uint64)
	next.Store(cfg.start)

	return &Counter{next: next}
}

// Clone returns a handle that continues the same sequence as c.
func (c *Counter) Clone() *Counter {
	return &Counter{next: c.next}
}

// Generate issues the next value of the sequence. It never declines.
func (c *Counter) Generate(_ *http.Request) (ID, bool) {
	n := c.next.Add(1) - 1

	return Must(strconv.FormatUint(n, 10)), true
}
