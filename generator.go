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

import "net/http"

// Generator produces identifiers for inbound requests.
//
// Generate is called once per request. The request is read-only; strategies
// are free to ignore it. Returning ok == false declines to tag the request,
// which is a normal outcome and not an error.
//
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate(r *http.Request) (id ID, ok bool)
}

// GeneratorFunc adapts an ordinary function to the [Generator] interface.
type GeneratorFunc func(r *http.Request) (ID, bool)

// Generate calls f(r).
func (f GeneratorFunc) Generate(r *http.Request) (ID, bool) {
	return f(r)
}

// FirstOf returns a [Generator] that asks each of gens in order and returns
// the first identifier produced. It declines when every generator declines.
//
// Example:
//
//	gen := requestid.FirstOf(tracegen.New(), ulidgen.New())
func FirstOf(gens ...Generator) Generator {
	return GeneratorFunc(func(r *http.Request) (ID, bool) {
		for _, g := range gens {
			if id, ok := g.Generate(r); ok {
				return id, true
			}
		}

		return ID{}, false
	})
}
