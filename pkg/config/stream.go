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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔧 StreamParser parses formats read by a streaming decoder into Config.
// Unknown keys are rejected and an empty file yields an empty Config.
type StreamParser struct {
	Format     string
	Extensions []string

	decode func(r io.Reader, cfg *Config) error
}

var (
	// YAML reads .yaml and .yml files with yaml.v3
	YAML = &StreamParser{
		Format:     "YAML",
		Extensions: []string{".yaml", ".yml"},
		decode: func(r io.Reader, cfg *Config) error {
			dec := yaml.NewDecoder(r)
			dec.KnownFields(true)
			return dec.Decode(cfg)
		},
	}

	// JSON reads .json files
	JSON = &StreamParser{
		Format:     "JSON",
		Extensions: []string{".json"},
		decode: func(r io.Reader, cfg *Config) error {
			dec := json.NewDecoder(r)
			dec.DisallowUnknownFields()
			return dec.Decode(cfg)
		},
	}
)

func init() {
	Register(YAML)
	Register(JSON)
}

// 🔍 CanParse checks the file extension, ignoring case
func (p *StreamParser) CanParse(filename string) bool {
	lower := strings.ToLower(strings.TrimSpace(filename))
	for _, ext := range p.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// 📝 Parse decodes the first document in data
func (p *StreamParser) Parse(ctx context.Context, data []byte, filename string) (*Config, error) {
	var cfg Config
	if err := p.decode(bytes.NewReader(data), &cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing %s: %w", p.Format, err)
	}
	return &cfg, nil
}
