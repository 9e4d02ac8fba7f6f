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

// Package tracegen derives request identifiers from OpenTelemetry traces.
//
// When tracing middleware runs before the request ID middleware, the request
// context carries a span context. Reusing its trace ID as the request ID
// makes logs and traces join on a single key. Requests without a valid span
// context are declined, so tracegen is normally chained in front of a
// generator that always produces a value:
//
//	gen := requestid.FirstOf(tracegen.New(), ulidgen.New())
package tracegen

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/requestid"
)

// Option defines functional options for the trace ID generator.
type Option func(*config)

type config struct {
	withSpan bool
}

func defaultConfig() *config {
	return &config{}
}

// WithSpanID appends the span ID to the trace ID, separated by a dash:
//
//	4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7
func WithSpanID() Option {
	return func(cfg *config) {
		cfg.withSpan = true
	}
}

// Generator issues the trace ID of the request's span context as the
// request identifier. It is stateless and safe for concurrent use.
type Generator struct {
	withSpan bool
}

// New returns a trace ID generator.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Generator{withSpan: cfg.withSpan}
}

// Generate returns the lowercase hex trace ID of r's span context. It
// declines when r is nil or carries no valid span context.
func (g *Generator) Generate(r *http.Request) (requestid.ID, bool) {
	if r == nil {
		return requestid.ID{}, false
	}
	sc := trace.SpanContextFromContext(r.Context())
	if !sc.IsValid() {
		return requestid.ID{}, false
	}

	s := sc.TraceID().String()
	if g.withSpan {
		s += "-" + sc.SpanID().String()
	}

	return requestid.Must(s), true
}
