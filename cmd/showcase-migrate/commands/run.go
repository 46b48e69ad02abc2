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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/showcase-migrate/cmd/showcase-migrate/opts"
	"github.com/walteh/showcase-migrate/pkg/log"
	"github.com/walteh/showcase-migrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite Showcase components in place",
		Long: `Run migrates every eligible document below the docs directory.
It will:
1. Find documents matching the include globs
2. Skip documents without <Showcase and items={, or with a <Checklist
3. Rewrite items= to sections= and pick a tone for each section
4. Save changed documents (unless --dry-run)
5. Print a per-document status and a summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.LoadConfig(ctx, cmd)
			if err != nil {
				return err
			}
			logger := log.FromContext(ctx)

			m, err := operation.New(operation.Options{
				Config: cfg,
				Store:  opts.Store(cfg),
				Logger: logger,
			})
			if err != nil {
				return errors.Errorf("creating migrator: %w", err)
			}

			if cfg.DryRun {
				logger.Header("migrating " + cfg.DocsDir + " (dry run)")
			} else {
				logger.Header("migrating " + cfg.DocsDir)
			}

			report, err := m.Run(ctx)
			if report != nil {
				logger.Summary(ctx, report.Summary())
			}
			if err != nil {
				return errors.Errorf("running migration: %w", err)
			}

			if n := len(report.Errors()); n > 0 {
				logger.Errorf("%d of %d documents failed", n, report.Scanned())
				return errors.Errorf("%d of %d documents failed", n, report.Scanned())
			}
			logger.Successf("%d documents migrated", report.Modified())
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "report what would change without writing")
	cmd.Flags().Bool("diff", false, "print a unified diff for every changed document")

	return cmd
}
