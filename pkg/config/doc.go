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

// Package config loads showcase-migrate configuration.
//
//	+-------------+
//	|   Config    |
//	|  (Loader)   |
//	+------+------+
//	       |
//	+------+------+------+
//	|      |             |
//	YAML   HCL         JSON
//
// 🎯 Purpose:
// - Reads the docs directory and document globs from a config file
// - Replaces the hard-coded docs path with an explicit setting
// - Lets command line flags override anything in the file
// - Loads dotenv files first, so HCL can read them through env.NAME
//
// 🔍 Example:
//
//	# .showcase-migrate.yaml
//	docs_dir: ./docs
//	include:
//	  - "**/*.mdx"
//	exclude:
//	  - "drafts/**"
//	concurrency: 4
//
//	# .showcase-migrate.hcl
//	docs_dir = "${env.HOME}/site/docs"
//	dry_run  = true
package config
