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

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report documents that still use items=",
		Long: `Check rewrites documents in memory only and lists the ones that would change.
It exits non-zero when any document still needs migrating, which makes it
usable as a CI gate.`,
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

			logger.Header("checking " + cfg.DocsDir)

			report, err := m.Check(ctx)
			if err != nil {
				return errors.Errorf("checking documents: %w", err)
			}

			if n := len(report.Errors()); n > 0 {
				logger.Errorf("%d of %d documents could not be read", n, report.Scanned())
				return errors.Errorf("%d of %d documents could not be read", n, report.Scanned())
			}
			if pending := report.Pending(); len(pending) > 0 {
				for _, d := range pending {
					logger.Warningf("%s still uses items=", d.Path)
				}
				return errors.Errorf("%d documents need migration", len(pending))
			}

			logger.Success("all documents use sections=")
			return nil
		},
	}

	cmd.Flags().Bool("diff", false, "print a unified diff for every document that would change")

	return cmd
}
