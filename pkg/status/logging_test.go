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

package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileOperation(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		path   string
		status DocStatus
		detail string
		want   string
	}{
		{
			name:   "modified",
			path:   "guides/caching.mdx",
			status: StatusModified,
			detail: "2 occurrences",
			want:   "    ✓ guides/caching.mdx                            modified      2 occurrences",
		},
		{
			name:   "unchanged",
			path:   "intro.mdx",
			status: StatusUnchanged,
			detail: "no changes matched",
			want:   "    ⊘ intro.mdx                                     unchanged     no changes matched",
		},
		{
			name:   "read_failed",
			path:   "broken.mdx",
			status: StatusReadFailed,
			want:   "    ✗ broken.mdx                                    read-failed  ",
		},
		{
			name:   "ineligible",
			path:   "other.mdx",
			status: StatusIneligible,
			want:   "    - other.mdx                                     ineligible   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileOperation(tt.path, tt.status, tt.detail))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	assert.Equal(t, "⏳ Progress: 1/4 (25%)", FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", FormatProgress(0, 0))
}

func TestUnifiedDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	diff, err := UnifiedDiff("a.mdx", "same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, diff, "equal content should produce no diff")

	diff, err = UnifiedDiff("a.mdx", "one\ntwo\n", "one\nthree\n")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- a/a.mdx")
	assert.Contains(t, diff, "+++ b/a.mdx")
	assert.Contains(t, diff, "-two\n")
	assert.Contains(t, diff, "+three\n")

	assert.Equal(t, diff, ColorizeDiff(diff), "colorizing without color should not change the diff")
}
