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

// Package requestid defines request identifiers and the generators that
// produce them.
//
// An [ID] is a validated string that can be written into an HTTP header
// value as-is: every byte is printable ASCII. A [Generator] produces one
// [ID] per inbound request, or declines to produce one. The HTTP pipeline
// that calls the generator decides where the identifier goes (header name,
// context key, logs); this package only makes the value.
//
// # Strategies
//
// The core package ships the dependency-free strategy:
//
//   - [Counter]: decimal process-local sequence 0, 1, 2, ... shared by all
//     copies of one counter.
//
// Optional strategies live in their own packages so that importing the core
// does not pull their dependencies:
//
//   - rivaas.dev/requestid/uuidgen: random UUID v4 (or time-ordered v7)
//   - rivaas.dev/requestid/ulidgen: sortable ULID
//   - rivaas.dev/requestid/snowflakegen: numeric Snowflake IDs
//   - rivaas.dev/requestid/tracegen: OpenTelemetry trace ID of the request
//
// Strategies compose with [FirstOf]:
//
//	gen := requestid.FirstOf(tracegen.New(), ulidgen.New())
//
// # Using a Generator
//
// The middleware package applies a generator to a net/http handler:
//
//	import "rivaas.dev/requestid/middleware"
//
//	handler = middleware.New(middleware.WithGenerator(requestid.NewCounter()))(handler)
//
// # Failure Semantics
//
// Generators build identifiers with [Must]. The output alphabets of all
// bundled strategies are subsets of printable ASCII, so a validation failure
// means a formatting bug and panics instead of yielding a placeholder.
package requestid
