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
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"rivaas.dev/requestid/uuidgen"
)

const (
	instrumentationName = "rivaas.dev/requestid/middleware"

	metricAssigned = "requestid.assigned"
	attrSource     = "requestid.source"
)

// Values of the requestid.source metric attribute.
const (
	SourceGenerated = "generated"
	SourceClient    = "client"
	SourceDeclined  = "declined"
)

type contextKey struct{}

// defaultConfig returns the default configuration for requestid middleware.
func defaultConfig() *config {
	return &config{
		headerName:    DefaultHeader,
		generator:     uuidgen.NewV7(),
		allowClientID: true,
		logger:        slog.New(slog.DiscardHandler),
		meterProvider: noop.NewMeterProvider(),
	}
}

// New returns a net/http middleware that tags each request with a request ID.
//
// The middleware will:
//  1. Check if a request ID is already present in the configured header
//  2. Use the existing ID if allowed, or ask the generator for a new one
//  3. Set the request ID in the response header and the request context
//
// If the generator declines and the client sent no ID, the request is
// served untagged.
//
// Basic usage:
//
//	mux := http.NewServeMux()
//	handler := middleware.New()(mux)
//
// Sequential IDs:
//
//	handler := middleware.New(
//	    middleware.WithGenerator(requestid.NewCounter()),
//	)(mux)
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	assigned, err := cfg.meterProvider.Meter(instrumentationName).Int64Counter(
		metricAssigned,
		metric.WithDescription("Number of requests by request ID source"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		cfg.logger.Warn("requestid: counter instrument unavailable", "error", err)
		assigned, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter(metricAssigned)
	}

	generated := metric.WithAttributeSet(attribute.NewSet(attribute.String(attrSource, SourceGenerated)))
	client := metric.WithAttributeSet(attribute.NewSet(attribute.String(attrSource, SourceClient)))
	declined := metric.WithAttributeSet(attribute.NewSet(attribute.String(attrSource, SourceDeclined)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var requestID string
			if cfg.allowClientID {
				requestID = r.Header.Get(cfg.headerName)
			}

			var source metric.AddOption = client
			if requestID == "" {
				id, ok := cfg.generator.Generate(r)
				if !ok {
					assigned.Add(ctx, 1, declined)
					cfg.logger.DebugContext(ctx, "request id declined",
						"header", cfg.headerName,
						"method", r.Method,
						"path", r.URL.Path,
					)
					next.ServeHTTP(w, r)

					return
				}
				requestID = id.String()
				source = generated
			}
			assigned.Add(ctx, 1, source)

			w.Header().Set(cfg.headerName, requestID)
			next.ServeHTTP(w, r.WithContext(NewContext(ctx, requestID)))
		})
	}
}

// NewContext returns a copy of ctx carrying requestID.
func NewContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext returns the request ID stored in ctx by the middleware.
func FromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(contextKey{}).(string)

	return requestID, ok
}

// Get retrieves the request ID of r.
// Returns an empty string if no request ID has been set.
//
// Example:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    logger.Info("processing request", "request_id", middleware.Get(r))
//	}
func Get(r *http.Request) string {
	requestID, _ := FromContext(r.Context())

	return requestID
}
