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

import "strings"

// ✅ Eligible reports whether a document should be handed to Rewrite at all.
//
// The document must mention the tag and an items={ prop, and must not contain
// the excluded tag anywhere. This is coarser than the adjacency check Rewrite
// does per occurrence; both apply.
func Eligible(text string) bool {
	return strings.Contains(text, "<"+TagName) &&
		strings.Contains(text, "items={") &&
		!strings.Contains(text, "<"+ExcludedTagName)
}
