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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/showcase-migrate/cmd/showcase-migrate/opts"
	"github.com/walteh/showcase-migrate/pkg/showcase"
)

// NewToneCmd creates a new tone command
func NewToneCmd(_ *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "tone LABEL...",
		Short: "Print the tone each label would get",
		Example: `  showcase-migrate tone "Best practices" "Pitfalls" "Overview"
  showcase-migrate tone Anti-pattern`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, label := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", showcase.ClassifyTone(label), label)
			}
			return nil
		},
	}
}
