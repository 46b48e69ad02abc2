// Copyright 2025 walteh LLC
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

package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/showcase-migrate/pkg/config"
	"github.com/walteh/showcase-migrate/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 💾 DocumentStore is where documents are listed, read and saved
type DocumentStore interface {
	// Glob lists document paths matching include and not exclude, sorted
	Glob(ctx context.Context, include, exclude []string) ([]string, error)
	// ReadFile returns a document's content
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFileAtomic replaces a document's content
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Options contains configuration for the migrator
type Options struct {
	// Config is the validated showcase-migrate configuration
	Config *config.Config
	// Store supplies and persists documents
	Store DocumentStore
	// Logger prints per-document results; nil discards them
	Logger *log.Logger
}

// 🎮 Migrator rewrites every eligible document in a store
type Migrator struct {
	config *config.Config
	store  DocumentStore
	logger *log.Logger
}

// 🏭 New creates a new migrator with the given options
func New(opts Options) (*Migrator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Store == nil {
		return nil, errors.Errorf("store is required")
	}
	if opts.Config.Concurrency < 1 {
		return nil, errors.Errorf("concurrency must be positive, got %d", opts.Config.Concurrency)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, zerolog.Nop())
	}

	return &Migrator{
		config: opts.Config,
		store:  opts.Store,
		logger: logger,
	}, nil
}
