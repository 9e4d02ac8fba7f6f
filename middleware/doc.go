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

// Package middleware applies a [requestid.Generator] to net/http handlers.
//
// The middleware tags every request with an identifier and makes it
// available to clients (response header) and to downstream handlers
// (request context), so the ID can be used to correlate logs and traces
// across services.
//
// # Basic Usage
//
//	import "rivaas.dev/requestid/middleware"
//
//	handler := middleware.New()(mux)
//
// # Request ID Generation
//
// For each request the middleware:
//
//   - Reuses the X-Request-ID header sent by the client, if any and allowed
//   - Otherwise asks the configured generator (UUID v7 by default)
//
// A generator may decline, in which case no header is set and the request
// continues without an ID. This is what [rivaas.dev/requestid/tracegen]
// does for untraced requests; chain it with [requestid.FirstOf] to always
// get an ID.
//
// # Configuration Options
//
//   - [WithHeader]: Custom header name for request ID (default: X-Request-ID)
//   - [WithGenerator]: Any [requestid.Generator]
//   - [WithULID]: Use ULID instead of UUID v7 for shorter IDs
//   - [WithAllowClientID]: Control whether to accept client-provided IDs
//   - [WithLogger]: slog logger for decline messages
//   - [WithMeterProvider]: OpenTelemetry meter provider
//
// # Metrics
//
// The middleware counts requests in the requestid.assigned counter with a
// requestid.source attribute of "generated", "client" or "declined".
//
// # Accessing Request ID
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    id := middleware.Get(r)
//	    logger.Info("processing request", "request_id", id)
//	}
package middleware
