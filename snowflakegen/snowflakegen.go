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

// Package snowflakegen provides a [requestid.Generator] backed by Snowflake
// IDs: 63-bit integers made of a millisecond timestamp, a 10-bit node number
// and a 12-bit per-millisecond sequence, rendered in decimal.
//
// IDs from one node increase numerically. Distinct processes should use
// distinct node numbers; by default a random one is picked.
package snowflakegen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net/http"

	"github.com/bwmarrin/snowflake"

	"rivaas.dev/requestid"
)

// Option defines functional options for the Snowflake generator.
type Option func(*config)

type config struct {
	node    int64
	hasNode bool
}

// WithNode sets the node number, between 0 and 1023.
// Default: random
func WithNode(node int64) Option {
	return func(cfg *config) {
		cfg.node = node
		cfg.hasNode = true
	}
}

// Generator issues Snowflake request identifiers. It is safe for concurrent
// use and never declines.
type Generator struct {
	node *snowflake.Node
}

// New returns a Snowflake generator. It fails if the node number is out of
// range or a random one cannot be drawn.
func New(opts ...Option) (*Generator, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.hasNode {
		n, err := randomNode()
		if err != nil {
			return nil, fmt.Errorf("snowflakegen: random node: %w", err)
		}
		cfg.node = n
	}

	node, err := snowflake.NewNode(cfg.node)
	if err != nil {
		return nil, fmt.Errorf("snowflakegen: node %d: %w", cfg.node, err)
	}

	return &Generator{node: node}, nil
}

func randomNode() (int64, error) {
	var n uint64
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		return 0, err
	}

	return int64(n & (1<<10 - 1)), nil
}

// Generate returns the next Snowflake ID of this node.
func (g *Generator) Generate(_ *http.Request) (requestid.ID, bool) {
	return requestid.Must(g.node.Generate().String()), true
}
