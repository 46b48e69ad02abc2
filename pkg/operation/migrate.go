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
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/walteh/showcase-migrate/pkg/showcase"
	"github.com/walteh/showcase-migrate/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Run migrates every eligible document, writing changes unless the
// config asks for a dry run.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	return m.run(ctx, m.config.DryRun)
}

// 🔍 Check rewrites in memory only and reports which documents still need migrating
func (m *Migrator) Check(ctx context.Context) (*Report, error) {
	return m.run(ctx, true)
}

func (m *Migrator) run(ctx context.Context, dryRun bool) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	paths, err := m.store.Glob(ctx, m.config.Include, m.config.Exclude)
	if err != nil {
		return nil, errors.Errorf("discovering documents: %w", err)
	}
	logger.Debug().Int("documents", len(paths)).Bool("dry_run", dryRun).Msg("discovered documents")

	results := make([]DocumentResult, len(paths))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.config.Concurrency)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = m.processDocument(gctx, path, dryRun)
			logger.Debug().Str("file", path).Msg(status.FormatProgress(int(done.Add(1)), len(paths)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("processing documents: %w", err)
	}

	report := &Report{DryRun: dryRun}
	for _, res := range results {
		if res.Path == "" {
			continue // never started
		}
		report.Documents = append(report.Documents, res)
		m.logResult(ctx, res, dryRun)
	}

	if err := ctx.Err(); err != nil {
		return report, errors.Errorf("migration interrupted: %w", err)
	}
	return report, nil
}

// processDocument never fails; read and write problems end up on the result
func (m *Migrator) processDocument(ctx context.Context, path string, dryRun bool) DocumentResult {
	res := DocumentResult{Path: path}

	content, err := m.store.ReadFile(ctx, path)
	if err != nil {
		res.Status = status.StatusReadFailed
		res.Err = &DocumentError{Kind: ReadFailure, Path: path, Err: err}
		return res
	}

	original := string(content)
	if !showcase.Eligible(original) {
		res.Status = status.StatusIneligible
		return res
	}

	rewritten, stats := showcase.RewriteWithStats(original)
	res.Stats = stats
	if rewritten == original {
		res.Status = status.StatusUnchanged
		return res
	}
	res.Status = status.StatusModified

	if m.config.Diff {
		diff, err := status.UnifiedDiff(path, original, rewritten)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("file", path).Msg("computing diff")
		}
		res.Diff = diff
	}

	if dryRun {
		return res
	}

	if err := m.store.WriteFileAtomic(ctx, path, []byte(rewritten)); err != nil {
		res.Status = status.StatusWriteFailed
		res.Err = &DocumentError{Kind: WriteFailure, Path: path, Err: err}
	}
	return res
}

func (m *Migrator) logResult(ctx context.Context, res DocumentResult, dryRun bool) {
	if res.Status == status.StatusIneligible {
		zerolog.Ctx(ctx).Debug().Str("file", res.Path).Msg("not eligible")
		return
	}
	m.logger.LogDocument(ctx, res.operation(dryRun))
	if res.Diff != "" {
		m.logger.LogDiff(res.Diff)
	}
}
