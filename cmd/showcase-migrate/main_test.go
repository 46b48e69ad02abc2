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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pendingDoc = `# Guide

<Showcase items={[{label: "Best practices", points: ["Keep it short"]}]} />
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "creating doc dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "writing doc")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		errContains string
		wantRewrite bool
	}{
		{
			name:        "rewrites_documents",
			args:        []string{"run"},
			wantRewrite: true,
		},
		{
			name: "dry_run_leaves_documents",
			args: []string{"run", "--dry-run"},
		},
		{
			name: "dry_run_with_diff",
			args: []string{"run", "--dry-run", "--diff"},
		},
		{
			name: "excluded_documents_untouched",
			args: []string{"run", "--exclude", "guides/**"},
		},
		{
			name:        "rejects_bad_glob",
			args:        []string{"run", "--include", "[abc"},
			wantErr:     true,
			errContains: "invalid glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeDoc(t, dir, "guides/intro.mdx", pendingDoc)

			_, err := execute(t, append(tt.args, "--dir", dir)...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)

			got, err := os.ReadFile(path)
			require.NoError(t, err, "reading doc")
			if tt.wantRewrite {
				assert.Contains(t, string(got), `sections={[`)
				assert.Contains(t, string(got), `{label: "Best practices", body: "- Keep it short", tone: "positive"}`)
				assert.NotContains(t, string(got), "items=")
			} else {
				assert.Equal(t, pendingDoc, string(got))
			}
		})
	}
}

func TestRunCommandRequiresDocsDir(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs_dir is required")
}

func TestRunCommandExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "docs/a.mdx", pendingDoc)

	cfgPath := filepath.Join(dir, "migrate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs_dir: "+filepath.Join(dir, "docs")+"\nconcurrency: 2\n"), 0o644))

	_, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "sections={[")

	_, err = execute(t, "run", "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "intro.mdx", pendingDoc)
	writeDoc(t, dir, "list.mdx", "<Checklist />\n"+pendingDoc)

	out, err := execute(t, "check", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 documents need migration")
	assert.Contains(t, out, "intro.mdx still uses items=")
	assert.NotContains(t, out, "list.mdx still uses items=")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pendingDoc, string(got), "check must not write")

	out, err = execute(t, "run", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 documents migrated")

	out, err = execute(t, "check", "--dir", dir)
	assert.NoError(t, err)
	assert.Contains(t, out, "all documents use sections=")
}

func TestToneCommand(t *testing.T) {
	out, err := execute(t, "tone", "Best practices", "Pitfalls", "Overview")
	require.NoError(t, err)
	assert.Equal(t, "positive\tBest practices\nwarning\tPitfalls\nneutral\tOverview\n", out)

	_, err = execute(t, "tone")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "showcase-migrate")
	assert.Contains(t, out, "Go:")
}

func TestRunCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "locked.mdx", pendingDoc)
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { os.Chmod(path, 0o644) })
	if _, err := os.ReadFile(path); err == nil {
		t.Skip("file permissions are not enforced for this user")
	}

	out, err := execute(t, "run", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 documents failed")
	assert.Contains(t, out, "❌ 1 of 1 documents failed")
}
