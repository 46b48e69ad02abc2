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
Package operation runs a migration over a documentation tree.

	+-------------+
	|  Migrator   |
	|  (Driver)   |
	+------+------+
	       |
	+------+------+      +-------------+
	|  showcase   | ---> |   status    |
	| (Rewriter)  |      |  (Store)    |
	+-------------+      +-------------+

🔄 Flow:
1. Finds documents with the configured include/exclude globs
2. Reads each one and drops those that are not eligible
3. Rewrites the rest with showcase.RewriteWithStats
4. Saves changed documents unless this is a dry run
5. Reports every document in path order

⚡ Failures:
A document that cannot be read is a ReadFailure, one that cannot be saved is a
WriteFailure. Both are recorded on the document and the batch carries on. Only
failing to list documents, or cancelling the context, ends a run early.

🔍 Example:

	m, err := operation.New(operation.Options{
		Config: cfg,
		Store:  status.NewStore(cfg.DocsDir),
		Logger: log.FromContext(ctx),
	})
	report, err := m.Run(ctx)
*/
package operation
