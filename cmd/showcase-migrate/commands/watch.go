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
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/showcase-migrate/cmd/showcase-migrate/opts"
	"github.com/walteh/showcase-migrate/pkg/log"
	"github.com/walteh/showcase-migrate/pkg/operation"
	"github.com/walteh/showcase-migrate/pkg/watch"
	"gitlab.com/tozd/go/errors"
)

// NewWatchCmd creates a new watch command
func NewWatchCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Migrate documents again whenever they change",
		Long: `Watch runs a migration, then keeps watching the docs directory.
It will:
1. Run the same migration as the run command
2. Wait for matching documents to be created or edited
3. Run again once changes settle, until interrupted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.LoadConfig(ctx, cmd)
			if err != nil {
				return err
			}
			logger := log.FromContext(ctx)

			store := opts.Store(cfg)

			m, err := operation.New(operation.Options{
				Config: cfg,
				Store:  store,
				Logger: logger,
			})
			if err != nil {
				return errors.Errorf("creating migrator: %w", err)
			}

			w, err := watch.New(watch.Options{
				Root:    store.BaseDir(),
				Include: cfg.Include,
				Exclude: cfg.Exclude,
			})
			if err != nil {
				return errors.Errorf("creating watcher: %w", err)
			}

			migrate := func(ctx context.Context) error {
				report, err := m.Run(ctx)
				if report != nil {
					logger.Summary(ctx, report.Summary())
				}
				return err
			}

			logger.Header("watching " + cfg.DocsDir)
			if err := migrate(ctx); err != nil {
				return errors.Errorf("running migration: %w", err)
			}

			logger.Info("waiting for changes, press ctrl-c to stop")
			return w.Run(ctx, func(ctx context.Context) error {
				logger.LogNewline()
				logger.Infof("change detected below %s", store.BaseDir())
				return migrate(ctx)
			})
		},
	}

	cmd.Flags().Bool("dry-run", false, "report what would change without writing")
	cmd.Flags().Bool("diff", false, "print a unified diff for every changed document")

	return cmd
}
