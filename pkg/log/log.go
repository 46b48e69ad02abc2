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

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/showcase-migrate/pkg/showcase"
	"github.com/walteh/showcase-migrate/pkg/status"
)

// 🎯 DocumentOperation is the outcome of one document, as shown to the user
type DocumentOperation struct {
	Path        string           // Document path relative to the docs directory
	Status      status.DocStatus // What happened to it
	Occurrences int              // Occurrences rewritten
	Skipped     int              // Occurrences left alone because of the excluded tag
	DryRun      bool             // Whether a modified document was left unsaved
	Err         error            // Read or write failure
}

// 📊 Summary is the end-of-run tally
type Summary struct {
	Scanned     int
	Eligible    int
	Modified    int
	Occurrences int
	Errors      []DocumentOperation
	DryRun      bool
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger printing to console and logging to zlog
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func (op DocumentOperation) detail() string {
	switch {
	case op.Err != nil:
		return op.Err.Error()
	case op.Status == status.StatusModified:
		d := plural(op.Occurrences, "occurrence")
		if op.DryRun {
			d += ", dry run"
		}
		return d
	case op.Status == status.StatusUnchanged:
		if op.Skipped > 0 {
			return "no changes matched, " + plural(op.Skipped, "occurrence") + " after " + showcase.ExcludedTagName
		}
		return "no changes matched"
	default:
		return ""
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// 📝 LogDocument logs the outcome of one document
func (l *Logger) LogDocument(ctx context.Context, op DocumentOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatFileOperation(op.Path, op.Status, op.detail()))

	ev := l.zlog.Info()
	if op.Err != nil {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Str("status", op.Status.String()).
		Int("occurrences", op.Occurrences).
		Int("skipped", op.Skipped).
		Bool("dry_run", op.DryRun).
		Msg("document processed")
}

// 📝 LogDiff prints a unified diff
func (l *Logger) LogDiff(diff string) {
	if diff == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, status.ColorizeDiff(diff))
}

// 📝 Summary prints the end-of-run tally as a table
func (l *Logger) Summary(ctx context.Context, s Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{
		{"Documents", "Count"},
		{"Scanned", strconv.Itoa(s.Scanned)},
		{"Eligible", strconv.Itoa(s.Eligible)},
		{"Modified", strconv.Itoa(s.Modified)},
		{"Errors", strconv.Itoa(len(s.Errors))},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Error().Err(err).Msg("rendering summary table")
	} else {
		fmt.Fprintf(l.console, "\n%s\n", table)
	}

	for _, e := range s.Errors {
		fmt.Fprintf(l.console, "  - %s: %s\n", e.Path, color.New(color.FgRed).Sprint(e.Err))
	}
	if s.DryRun {
		fmt.Fprintf(l.console, "\n%s\n", color.New(color.Faint).Sprint("(dry run: use without --dry-run to apply changes)"))
	}

	l.zlog.Info().
		Int("scanned", s.Scanned).
		Int("eligible", s.Eligible).
		Int("modified", s.Modified).
		Int("occurrences", s.Occurrences).
		Int("errors", len(s.Errors)).
		Bool("dry_run", s.DryRun).
		Msg("run complete")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("showcase-migrate")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
