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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LoadEnvFiles reads dotenv files into the process environment before the
// config is parsed, so HCL configs can reference their values through env.NAME.
// Variables already set in the environment win.
func LoadEnvFiles(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Errorf("loading env files: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Strs("files", paths).Msg("env files loaded")
	return nil
}
