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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_full",
			filename: "config.yaml",
			config: `
docs_dir: ./docs
include:
  - "**/*.mdx"
  - "**/*.md"
exclude:
  - "drafts/**"
dry_run: true
diff: true
concurrency: 2
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "./docs", cfg.DocsDir, "docs_dir should match")
				assert.Equal(t, []string{"**/*.mdx", "**/*.md"}, cfg.Include, "include should match")
				assert.Equal(t, []string{"drafts/**"}, cfg.Exclude, "exclude should match")
				assert.True(t, cfg.DryRun, "dry_run should be true")
				assert.True(t, cfg.Diff, "diff should be true")
				assert.Equal(t, 2, cfg.Concurrency, "concurrency should match")
			},
		},
		{
			name:     "yaml_minimal",
			filename: "config.yml",
			config:   "docs_dir: docs\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "docs", cfg.DocsDir, "docs_dir should match")
				assert.Empty(t, cfg.Include, "include should be filled by Validate, not the loader")
				assert.Equal(t, DefaultConcurrency, cfg.Concurrency, "concurrency should default")
				assert.False(t, cfg.DryRun, "dry_run should default to false")
			},
		},
		{
			name:     "yaml_empty",
			filename: "config.yaml",
			config:   "",
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.DocsDir, "docs_dir should be empty")
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "config.yaml",
			config:      "docs_dir: docs\nsource: nope\n",
			errContains: "parsing YAML",
		},
		{
			name:     "hcl_full",
			filename: "config.hcl",
			config: `
docs_dir    = "site/docs"
include     = ["**/*.mdx"]
exclude     = ["blog/**"]
dry_run     = true
concurrency = 3
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "site/docs", cfg.DocsDir, "docs_dir should match")
				assert.Equal(t, []string{"**/*.mdx"}, cfg.Include, "include should match")
				assert.Equal(t, []string{"blog/**"}, cfg.Exclude, "exclude should match")
				assert.True(t, cfg.DryRun, "dry_run should be true")
				assert.Equal(t, 3, cfg.Concurrency, "concurrency should match")
			},
		},
		{
			name:     "hcl_env_interpolation",
			filename: "config.hcl",
			config:   `docs_dir = "${env.SHOWCASE_MIGRATE_TEST_ROOT}/docs"`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/site/docs", cfg.DocsDir, "docs_dir should use the environment")
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "config.hcl",
			config:      `source = "docs"`,
			errContains: "decoding HCL",
		},
		{
			name:        "hcl_syntax_error",
			filename:    "config.hcl",
			config:      `docs_dir = `,
			errContains: "parsing HCL",
		},
		{
			name:     "json_full",
			filename: "config.json",
			config:   `{"docs_dir": "docs", "exclude": ["tmp/**"], "diff": true}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "docs", cfg.DocsDir, "docs_dir should match")
				assert.Equal(t, []string{"tmp/**"}, cfg.Exclude, "exclude should match")
				assert.True(t, cfg.Diff, "diff should be true")
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "config.json",
			config:      `{"docs": "docs"}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			config:      `docs_dir = "docs"`,
			errContains: "no parser found",
		},
	}

	t.Setenv("SHOWCASE_MIGRATE_TEST_ROOT", "/srv/site")
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.filename)
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := LoadConfig(ctx, configPath)
			if tt.errContains != "" {
				require.Error(t, err, "LoadConfig should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "LoadConfig should succeed")
			assert.Equal(t, configPath, cfg.Location(), "location should be recorded")
			tt.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadOrDefault(ctx, missing, true)
	require.NoError(t, err, "missing optional config should fall back to defaults")
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Location())

	_, err = LoadOrDefault(ctx, missing, false)
	require.Error(t, err, "missing explicit config should fail")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		errContains string
		want        Config
	}{
		{
			name: "defaults_filled",
			cfg:  Config{DocsDir: "./docs/"},
			want: Config{DocsDir: "docs", Include: []string{"**/*.mdx"}, Concurrency: DefaultConcurrency},
		},
		{
			name: "values_kept",
			cfg:  Config{DocsDir: "docs", Include: []string{"*.md"}, Exclude: []string{"a/**"}, Concurrency: 1},
			want: Config{DocsDir: "docs", Include: []string{"*.md"}, Exclude: []string{"a/**"}, Concurrency: 1},
		},
		{
			name:        "missing_docs_dir",
			cfg:         Config{},
			errContains: "docs_dir is required",
		},
		{
			name:        "negative_concurrency",
			cfg:         Config{DocsDir: "docs", Concurrency: -1},
			errContains: "concurrency must be positive",
		},
		{
			name:        "invalid_include",
			cfg:         Config{DocsDir: "docs", Include: []string{"[docs"}},
			errContains: "include 0: invalid glob",
		},
		{
			name:        "invalid_exclude",
			cfg:         Config{DocsDir: "docs", Exclude: []string{"ok/**", "{a,b"}},
			errContains: "exclude 1: invalid glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{"config.yaml", YAML},
		{"CONFIG.YML", YAML},
		{"config.hcl", &HCLParser{}},
		{"config.json", JSON},
		{"config.txt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "no parser should match")
				return
			}
			assert.IsType(t, tt.want, got, "parser type should match")
			if sp, ok := tt.want.(*StreamParser); ok {
				assert.Same(t, sp, got, "stream formats should resolve to their registered parser")
			}
		})
	}
}

func TestStreamParserEmptyInput(t *testing.T) {
	for _, p := range []*StreamParser{YAML, JSON} {
		t.Run(p.Format, func(t *testing.T) {
			cfg, err := p.Parse(context.Background(), nil, "empty"+p.Extensions[0])
			require.NoError(t, err, "empty input should parse")
			assert.Equal(t, &Config{}, cfg)
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	dir := t.TempDir()

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SHOWCASE_MIGRATE_ENV_DOCS=/from/dotenv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SHOWCASE_MIGRATE_ENV_DOCS") })

	require.NoError(t, LoadEnvFiles(ctx, envPath), "loading env file should succeed")
	assert.Equal(t, "/from/dotenv", os.Getenv("SHOWCASE_MIGRATE_ENV_DOCS"))

	configPath := filepath.Join(dir, "config.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte(`docs_dir = "${env.SHOWCASE_MIGRATE_ENV_DOCS}/guides"`), 0644))

	cfg, err := LoadConfig(ctx, configPath)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv/guides", cfg.DocsDir)

	assert.NoError(t, LoadEnvFiles(ctx), "no files is a no-op")

	err = LoadEnvFiles(ctx, filepath.Join(dir, "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading env files")
}
