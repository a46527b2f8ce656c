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

// Package resolve derives destination paths for rotated images.
package resolve

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Placeholder is replaced by the decimal angle inside suffix templates
const Placeholder = "{angle}"

var placeholderPattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(Placeholder))

// 🔍 ExistsFunc reports whether a filesystem entry exists at path
type ExistsFunc func(path string) (bool, error)

// 🧭 Resolver computes destination paths against the filesystem's current state.
//
// Existence is checked when Resolve runs, not when the file is written, so two
// writers targeting the same folder can both be handed the same free name.
type Resolver struct {
	exists ExistsFunc
}

// 🏭 New creates a resolver backed by the local filesystem
func New() *Resolver {
	return &Resolver{exists: lstatExists}
}

// 🏭 NewWithExists creates a resolver with a custom existence check
func NewWithExists(exists ExistsFunc) *Resolver {
	if exists == nil {
		exists = lstatExists
	}
	return &Resolver{exists: exists}
}

func lstatExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking %s: %w", path, err)
}

// 📝 EffectiveSuffix expands a suffix template for angle.
//
// A blank template becomes "_r<angle>". Otherwise every case-insensitive
// occurrence of {angle} is replaced; a template without the token is used as is.
func EffectiveSuffix(template string, angle int) string {
	a := strconv.Itoa(angle)
	if strings.TrimSpace(template) == "" {
		return "_r" + a
	}
	return placeholderPattern.ReplaceAllLiteralString(template, a)
}

// 🎯 Resolve returns the destination for source inside outputDir.
//
// The source extension is kept verbatim. With overwrite the first candidate is
// returned even if it exists; without it "_1", "_2", ... is inserted between
// the suffix and the extension until a free name is found.
func (r *Resolver) Resolve(ctx context.Context, outputDir, source string, angle int, suffixTemplate string, overwrite bool) (string, error) {
	name := filepath.Base(source)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	stem := base + EffectiveSuffix(suffixTemplate, angle)

	candidate := filepath.Join(outputDir, stem+ext)
	if overwrite {
		return candidate, nil
	}

	for counter := 1; ; counter++ {
		taken, err := r.exists(candidate)
		if err != nil {
			return "", errors.Errorf("resolving destination for %s: %w", source, err)
		}
		if !taken {
			return candidate, nil
		}
		zerolog.Ctx(ctx).Trace().Str("candidate", candidate).Msg("destination taken")
		candidate = filepath.Join(outputDir, stem+"_"+strconv.Itoa(counter)+ext)
	}
}
