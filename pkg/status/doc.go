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

/*
Package status owns the documents on disk and how their outcome is shown.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	|   Store   |           |  Format   |
	| (Docs FS) |           |  (UI/UX)  |
	+-----------+           +-----------+

🎯 Purpose:
- Finds documents below the docs directory with doublestar globs
- Reads documents and writes rewritten ones atomically
- Names the outcome of each document (DocStatus)
- Formats per-document lines and unified diffs for the console

🔍 Example:

	store := status.NewStore("./docs")
	paths, err := store.Glob(ctx, []string{"guides/*.mdx"}, nil)
	content, err := store.ReadFile(ctx, paths[0])
	err = store.WriteFileAtomic(ctx, paths[0], rewritten)
*/
package status
