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

package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		label string
		want  Tone
	}{
		{"Good but risky", TonePositive},
		{"Anti-pattern", TonePositive},
		{"Best practices", TonePositive},
		{"When to apply", TonePositive},
		{"Do", TonePositive},
		{"Don't", TonePositive}, // "don't" contains "do"
		{"Healthy signals", TonePositive},
		{"BENEFITS", TonePositive},
		{"Avoid that", ToneWarning},
		{"Pitfalls", ToneWarning},
		{"Risks", ToneWarning},
		{"Wrong way", ToneWarning},
		{"Common issues", ToneWarning},
		{"Problem", ToneWarning},
		{"Badge", ToneWarning},
		{"Anticipate", ToneWarning},
		{"Edge", ToneNeutral},
		{"Overview", ToneNeutral},
		{"", ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTone(tt.label))
		})
	}
}
