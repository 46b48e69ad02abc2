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
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 DocStatus represents the outcome of processing one document
type DocStatus int

const (
	StatusUnknown     DocStatus = iota
	StatusModified              // Document was (or would be) rewritten
	StatusUnchanged             // Eligible, but nothing matched
	StatusIneligible            // Filtered out before rewriting
	StatusReadFailed            // Document could not be read
	StatusWriteFailed           // Rewrite succeeded but could not be saved
)

// String returns a string representation of DocStatus
func (s DocStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusIneligible:
		return "ineligible"
	case StatusReadFailed:
		return "read-failed"
	case StatusWriteFailed:
		return "write-failed"
	default:
		return "unknown"
	}
}

// IsError reports whether the status is a failure
func (s DocStatus) IsError() bool {
	return s == StatusReadFailed || s == StatusWriteFailed
}

// 💾 Store reads and writes documents below a base directory.
// Paths handed in and out are slash separated and relative to the base.
type Store struct {
	baseDir string
	fsys    fs.FS
}

// 🏭 NewStore creates a store rooted at baseDir
func NewStore(baseDir string) *Store {
	baseDir = filepath.Clean(baseDir)
	return &Store{
		baseDir: baseDir,
		fsys:    os.DirFS(baseDir),
	}
}

// BaseDir returns the directory the store is rooted at
func (s *Store) BaseDir() string {
	return s.baseDir
}

// 🔒 getAbsPath returns the on-disk path for a store path
func (s *Store) getAbsPath(path string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(path))
}

// 🔍 Glob returns the sorted, de-duplicated files matching any include
// pattern and no exclude pattern.
func (s *Store) Glob(ctx context.Context, include, exclude []string) ([]string, error) {
	info, err := os.Stat(s.baseDir)
	if err != nil {
		return nil, errors.Errorf("checking docs directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("docs directory %s is not a directory", s.baseDir)
	}

	seen := map[string]struct{}{}
	var paths []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(s.fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}

			excluded, err := matchesAny(exclude, m)
			if err != nil {
				return nil, err
			}
			if excluded {
				zerolog.Ctx(ctx).Debug().Str("path", m).Msg("excluded by pattern")
				continue
			}
			paths = append(paths, m)
		}
	}

	slices.Sort(paths)
	return paths, nil
}

func matchesAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, errors.Errorf("matching %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// ReadFile returns the content of a document
func (s *Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(s.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFileAtomic replaces a document by writing a temp file next to it and
// renaming it into place. The original file mode is kept.
func (s *Store) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := s.getAbsPath(path)

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
