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

// Package operation provides the batch rotation engine and its async runner
package operation

import (
	"context"
	"slices"
	"strings"

	"github.com/walteh/batchrotate/pkg/resolve"
	"github.com/walteh/batchrotate/pkg/rotate"
	"github.com/walteh/batchrotate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrCancelled marks a job stopped by its cancellation signal
	ErrCancelled = errors.Base("rotation cancelled")
	// ErrNoOutputDir is returned by Validate when no output folder is set
	ErrNoOutputDir = errors.Base("output folder is required")
)

// 📦 Job is one batch rotation request
type Job struct {
	Files     []string // Source paths, processed in this order
	OutputDir string   // Destination folder, created if missing
	Angle     int      // Clockwise degrees, a multiple of 90
	Suffix    string   // Suffix template, may contain {angle}
	Overwrite bool     // Clobber existing destinations instead of numbering them
}

// 🔍 Validate rejects arguments the engine must never see
func (j Job) Validate() error {
	if strings.TrimSpace(j.OutputDir) == "" {
		return ErrNoOutputDir
	}
	if err := rotate.ValidateAngle(j.Angle); err != nil {
		return errors.Errorf("validating angle: %w", err)
	}
	if err := rotate.ValidateSuffix(j.Suffix); err != nil {
		return errors.Errorf("validating suffix: %w", err)
	}
	return nil
}

// clone copies the file list so callers cannot mutate a running job
func (j Job) clone() Job {
	j.Files = slices.Clone(j.Files)
	return j
}

// 📈 ProgressFunc receives one event per completed file
type ProgressFunc func(ctx context.Context, ev status.ProgressEvent)

// 🔧 Options contains dependencies for the engine
type Options struct {
	// Resolver derives destination paths, defaults to the local filesystem
	Resolver *resolve.Resolver
}

// 🎮 Engine rotates the files of a job one at a time
type Engine struct {
	resolver *resolve.Resolver
}

// 🏭 New creates an engine with the given options
func New(opts Options) *Engine {
	r := opts.Resolver
	if r == nil {
		r = resolve.New()
	}
	return &Engine{resolver: r}
}

// 🏁 OutcomeOf maps the error returned by Run to a terminal outcome
func OutcomeOf(err error) status.Outcome {
	switch {
	case err == nil:
		return status.OutcomeSuccess
	case IsCancelled(err):
		return status.OutcomeCancelled
	default:
		return status.OutcomeFailed
	}
}

// IsCancelled reports whether err ends a job by cancellation rather than failure
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
