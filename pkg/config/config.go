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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultConfigFile is looked up in the working directory when no --config is given
	DefaultConfigFile = ".showcase-migrate.yaml"

	// DefaultConcurrency is the number of documents processed at once
	DefaultConcurrency = 8
)

// DefaultInclude matches every MDX document below the docs directory
var DefaultInclude = []string{"**/*.mdx"}

// 📚 Config represents the complete configuration
type Config struct {
	DocsDir     string   `json:"docs_dir" yaml:"docs_dir" hcl:"docs_dir,optional"`          // Root of the documentation tree
	Include     []string `json:"include" yaml:"include" hcl:"include,optional"`             // Doublestar globs of documents to scan
	Exclude     []string `json:"exclude" yaml:"exclude" hcl:"exclude,optional"`             // Doublestar globs of documents to leave alone
	DryRun      bool     `json:"dry_run" yaml:"dry_run" hcl:"dry_run,optional"`             // Report only, never write
	Diff        bool     `json:"diff" yaml:"diff" hcl:"diff,optional"`                      // Print a unified diff per modified document
	Concurrency int      `json:"concurrency" yaml:"concurrency" hcl:"concurrency,optional"` // Documents processed at once

	location string // file the config was loaded from, if any
}

// 🏭 Default returns a config with defaults filled in and no docs directory
func Default() *Config {
	return &Config{
		Include:     append([]string(nil), DefaultInclude...),
		Concurrency: DefaultConcurrency,
	}
}

// Location returns the file the config was loaded from, or "" for a default config
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate fills in defaults and checks the configuration
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.DocsDir) == "" {
		return errors.Errorf("docs_dir is required")
	}
	cfg.DocsDir = filepath.Clean(cfg.DocsDir)

	if len(cfg.Include) == 0 {
		cfg.Include = append([]string(nil), DefaultInclude...)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must be positive, got %d", cfg.Concurrency)
	}

	for i, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("include %d: invalid glob %q", i, pattern)
		}
	}
	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude %d: invalid glob %q", i, pattern)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "apply"
	if cfg.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s [%s] (%s)", cfg.DocsDir, strings.Join(cfg.Include, ", "), mode)
}
