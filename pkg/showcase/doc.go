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
Package showcase rewrites <Showcase items={...} /> usages into the sections= prop shape.

	+-------------+      +-------------+      +-------------+
	| Occurrence  | ---> |    Items    | ---> |  Sections   |
	| (discovery) |      | (extraction)|      | (tone/body) |
	+-------------+      +-------------+      +-------------+

Before:

	<Showcase title="..." items={[
	  {label: "Do", points: ["a", "b"]},
	  {label: "Avoid", points: ["c"]}
	]} />

After:

	<Showcase title="..." sections={[
	    {label: "Do", body: "- a\n- b", tone: "positive"},
	    {label: "Avoid", body: "- c", tone: "warning"}
	  ]} />

The package is pure: Rewrite takes document text and returns the rewritten
text. Anything it cannot match is left exactly as it was, so running it twice
is a no-op. Rewrite is safe for concurrent use.

Only string labels and string points are understood. Escaped quotes, multi-line
string literals and nested components are not supported.
*/
package showcase
