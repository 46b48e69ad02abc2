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

package opts

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/showcase-migrate/pkg/config"
	"github.com/walteh/showcase-migrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile  string
	Debug       bool
	DocsDir     string
	Include     []string
	Exclude     []string
	Concurrency int
	EnvFiles    []string
}

// AddFlags adds the shared flags to the root command
func (o *RootOpts) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", config.DefaultConfigFile, "config file path (.yaml, .yml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.DocsDir, "dir", "", "docs directory to migrate (overrides docs_dir)")
	cmd.PersistentFlags().StringSliceVar(&o.Include, "include", nil, "glob of documents to scan, relative to the docs directory (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&o.Exclude, "exclude", nil, "glob of documents to skip (repeatable)")
	cmd.PersistentFlags().IntVar(&o.Concurrency, "concurrency", config.DefaultConcurrency, "documents processed at once")
	cmd.PersistentFlags().StringSliceVar(&o.EnvFiles, "env-file", nil, "dotenv file loaded before the config (repeatable)")
}

// LoadConfig reads the config file, applies flag overrides and validates the result.
// A missing config file is only an error when --config was given explicitly.
func (o *RootOpts) LoadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	if err := config.LoadEnvFiles(ctx, o.EnvFiles...); err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(ctx, o.ConfigFile, !flags.Changed("config"))
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if flags.Changed("dir") {
		cfg.DocsDir = o.DocsDir
	}
	if flags.Changed("include") {
		cfg.Include = o.Include
	}
	if flags.Changed("exclude") {
		cfg.Exclude = o.Exclude
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.Concurrency
	}
	if flags.Lookup("dry-run") != nil && flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Lookup("diff") != nil && flags.Changed("diff") {
		cfg.Diff, _ = flags.GetBool("diff")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Str("location", cfg.Location()).Msg("configuration loaded")
	return cfg, nil
}

// Store returns the document store for a validated config
func (o *RootOpts) Store(cfg *config.Config) *status.Store {
	return status.NewStore(cfg.DocsDir)
}
