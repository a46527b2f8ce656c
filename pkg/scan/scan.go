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

// Package scan enumerates the images of an input folder in a stable order.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ImageExtensions are the extensions matched when no include pattern is given
var ImageExtensions = []string{"jpg", "jpeg", "png", "bmp", "gif", "tif", "tiff"}

// 🔧 Options controls which files List returns
type Options struct {
	Recursive bool     // Descend into subfolders
	Include   []string // doublestar globs on slash-separated relative paths, defaults to image extensions
	Exclude   []string // doublestar globs removed after Include
	SkipDirs  []string // Absolute or relative folders that are never entered, e.g. the output folder
}

// DefaultInclude returns the include pattern for the supported image extensions
func DefaultInclude(recursive bool) string {
	pattern := "*.{" + strings.Join(ImageExtensions, ",") + "}"
	if recursive {
		return "**/" + pattern
	}
	return pattern
}

// 📂 List returns the matching files under dir, sorted by relative path.
//
// Matching is case-insensitive. Hidden files and folders are skipped.
func List(ctx context.Context, dir string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("reading input folder: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("input %s is not a folder", dir)
	}

	include := opts.Include
	if len(include) == 0 {
		include = []string{DefaultInclude(opts.Recursive)}
	}
	for _, p := range append(append([]string{}, include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}

	root := filepath.Clean(dir)
	skip := make(map[string]bool, len(opts.SkipDirs))
	for _, d := range opts.SkipDirs {
		if abs, err := filepath.Abs(d); err == nil {
			skip[abs] = true
		}
	}

	type match struct{ rel, path string }
	var found []match

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}

		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if hidden || !opts.Recursive || isSkipped(path, skip) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchAny(include, rel) || matchAny(opts.Exclude, rel) {
			logger.Trace().Str("file", rel).Msg("skipping unmatched file")
			return nil
		}

		found = append(found, match{rel: rel, path: path})
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("scanning %s: %w", dir, err)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].rel < found[j].rel })

	files := make([]string, len(found))
	for i, m := range found {
		files[i] = m.path
	}

	logger.Debug().Str("dir", dir).Int("files", len(files)).Msg("scanned input folder")
	return files, nil
}

func isSkipped(path string, skip map[string]bool) bool {
	if len(skip) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return skip[abs]
}

// 🔍 matchAny reports whether rel matches one of the patterns, ignoring case
func matchAny(patterns []string, rel string) bool {
	rel = strings.ToLower(rel)
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(strings.ToLower(p), rel) {
			return true
		}
	}
	return false
}
