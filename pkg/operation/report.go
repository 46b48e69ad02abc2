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

package operation

import (
	"fmt"

	"github.com/walteh/showcase-migrate/pkg/log"
	"github.com/walteh/showcase-migrate/pkg/showcase"
	"github.com/walteh/showcase-migrate/pkg/status"
)

// ErrorKind says which step of a document failed
type ErrorKind int

const (
	ReadFailure ErrorKind = iota + 1
	WriteFailure
)

// String returns a string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ReadFailure:
		return "read failure"
	case WriteFailure:
		return "write failure"
	default:
		return "unknown failure"
	}
}

// ❌ DocumentError is a failure confined to one document
type DocumentError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// 📄 DocumentResult is what happened to one document
type DocumentResult struct {
	Path   string
	Status status.DocStatus
	Stats  showcase.Stats
	Diff   string         // unified diff, only when diffs are enabled
	Err    *DocumentError // set for read and write failures
}

// 📊 Report is the outcome of a run, documents in path order
type Report struct {
	Documents []DocumentResult
	DryRun    bool
}

// Scanned is the number of documents looked at
func (r *Report) Scanned() int {
	return len(r.Documents)
}

// Eligible is the number of documents that passed the filter and were rewritten
func (r *Report) Eligible() int {
	return r.count(func(d DocumentResult) bool {
		return d.Status == status.StatusModified ||
			d.Status == status.StatusUnchanged ||
			d.Status == status.StatusWriteFailed
	})
}

// Modified is the number of documents that changed (or would change in a dry run)
func (r *Report) Modified() int {
	return r.count(func(d DocumentResult) bool {
		return d.Status == status.StatusModified
	})
}

// Occurrences is the number of occurrences rewritten across all documents
func (r *Report) Occurrences() int {
	n := 0
	for _, d := range r.Documents {
		n += d.Stats.Occurrences
	}
	return n
}

// Errors returns the documents that failed to read or write
func (r *Report) Errors() []DocumentResult {
	var out []DocumentResult
	for _, d := range r.Documents {
		if d.Status.IsError() {
			out = append(out, d)
		}
	}
	return out
}

// Pending returns the documents that were, or in a dry run would be, rewritten
func (r *Report) Pending() []DocumentResult {
	var out []DocumentResult
	for _, d := range r.Documents {
		if d.Status == status.StatusModified {
			out = append(out, d)
		}
	}
	return out
}

func (r *Report) count(fn func(DocumentResult) bool) int {
	n := 0
	for _, d := range r.Documents {
		if fn(d) {
			n++
		}
	}
	return n
}

// Summary converts the report for display
func (r *Report) Summary() log.Summary {
	s := log.Summary{
		Scanned:     r.Scanned(),
		Eligible:    r.Eligible(),
		Modified:    r.Modified(),
		Occurrences: r.Occurrences(),
		DryRun:      r.DryRun,
	}
	for _, d := range r.Errors() {
		s.Errors = append(s.Errors, d.operation(r.DryRun))
	}
	return s
}

func (d DocumentResult) operation(dryRun bool) log.DocumentOperation {
	op := log.DocumentOperation{
		Path:        d.Path,
		Status:      d.Status,
		Occurrences: d.Stats.Occurrences,
		Skipped:     d.Stats.Skipped,
		DryRun:      dryRun,
	}
	if d.Err != nil {
		op.Err = d.Err.Err
	}
	return op
}
