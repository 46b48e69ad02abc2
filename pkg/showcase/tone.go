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
	"strings"
)

// 🎨 Tone is the accent a section is rendered with
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneNeutral  Tone = "neutral"
)

// String returns the prop value for the tone
func (t Tone) String() string {
	return string(t)
}

// Order matters only for readability; any match in a set classifies the label.
var (
	positiveWords = []string{"good", "benefit", "pattern", "apply", "best", "do", "should", "healthy", "right"}
	warningWords  = []string{"bad", "avoid", "pitfall", "risk", "anti", "don't", "wrong", "issue", "problem"}
)

// 🎯 ClassifyTone derives a tone from a section label.
//
// Words are matched as substrings of the lower-cased label, not as whole words,
// and the positive set always wins over the warning set. "Anti-pattern" is
// therefore positive and "Badge" is warning.
func ClassifyTone(label string) Tone {
	lower := strings.ToLower(label)

	if containsAny(lower, positiveWords) {
		return TonePositive
	}
	if containsAny(lower, warningWords) {
		return ToneWarning
	}
	return ToneNeutral
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
