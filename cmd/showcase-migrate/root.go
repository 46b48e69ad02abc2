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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/showcase-migrate/cmd/showcase-migrate/commands"
	"github.com/walteh/showcase-migrate/cmd/showcase-migrate/opts"
	"github.com/walteh/showcase-migrate/pkg/log"
)

// newRootCmd wires the sub-commands to one shared set of options
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "showcase-migrate",
		Short: "Migrate <Showcase items={...} /> components to sections={...}",
		Long: `showcase-migrate rewrites Showcase components in a tree of MDX documents
from the items= prop shape to the sections= prop shape. Each item's points become
a bulleted body and its label decides the section tone.

Documents that contain a <Checklist are left alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(cmd.ErrOrStderr(), rootOpts.Debug)
			ctx := zlog.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog))
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootOpts.AddFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewToneCmd(rootOpts),
		commands.NewWatchCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return rootCmd
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
