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

package middleware

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"rivaas.dev/requestid"
	"rivaas.dev/requestid/ulidgen"
)

// DefaultHeader is the header used when [WithHeader] is not given.
const DefaultHeader = "X-Request-ID"

// Option defines functional options for requestid middleware configuration.
type Option func(*config)

// config holds the configuration for the requestid middleware.
type config struct {
	// headerName is the name of the header to use for the request ID
	headerName string

	// generator produces new request IDs
	generator requestid.Generator

	// allowClientID allows using request IDs provided by clients
	allowClientID bool

	logger        *slog.Logger
	meterProvider metric.MeterProvider
}

// WithHeader sets the header name for the request ID.
// Default: "X-Request-ID"
//
// Example:
//
//	middleware.New(middleware.WithHeader("X-Trace-ID"))
func WithHeader(headerName string) Option {
	return func(cfg *config) {
		cfg.headerName = headerName
	}
}

// WithGenerator sets the generator used for requests that carry no usable
// client ID. A generator that declines leaves the request untagged. A nil
// generator keeps the default.
//
// By default, UUID v7 is used (time-ordered, RFC 9562 compliant).
//
// Example:
//
//	middleware.New(middleware.WithGenerator(requestid.NewCounter()))
func WithGenerator(gen requestid.Generator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.generator = gen
		}
	}
}

// WithULID uses ULID for request ID generation instead of UUID v7.
// ULID provides time-ordered, lexicographically sortable identifiers
// with a compact 26-character representation.
//
// ULID format: 01ARZ3NDEKTSV4RRFFQ69G5FAV (26 characters)
// UUID v7 format: 018f3e9a-1b2c-7def-8000-abcdef123456 (36 characters)
func WithULID() Option {
	return func(cfg *config) {
		cfg.generator = ulidgen.New()
	}
}

// WithAllowClientID controls whether to accept request IDs from clients.
// When true, if the client provides a request ID in the header, it will be used.
// When false, always generate a new request ID regardless of client input.
// Default: true
//
// Client IDs are passed through as received; set this to false if all
// request IDs must be server-generated.
func WithAllowClientID(allow bool) Option {
	return func(cfg *config) {
		cfg.allowClientID = allow
	}
}

// WithLogger sets the logger for decline and instrumentation messages.
// Default: a logger that discards everything
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used to count
// assigned request IDs.
// Default: no-op provider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		if mp != nil {
			cfg.meterProvider = mp
		}
	}
}
