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
	"context"

	"github.com/walteh/batchrotate/pkg/codec"
	"github.com/walteh/batchrotate/pkg/rotate"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ PlannedFile is the destination a file would be written to
type PlannedFile struct {
	Source      string
	Destination string
	Format      string // Encoder selected for Destination
}

// 🗺️ Plan resolves the destination of every file without reading or writing images.
//
// Each file is resolved against the filesystem as it is now, exactly as Run
// would for the first file; names taken by earlier files of the same job are
// not tracked.
func (e *Engine) Plan(ctx context.Context, job Job) ([]PlannedFile, error) {
	angle := rotate.Normalize(job.Angle)
	plan := make([]PlannedFile, 0, len(job.Files))

	for _, file := range job.Files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("%w: %v", ErrCancelled, err)
		}

		dest, err := e.resolver.Resolve(ctx, job.OutputDir, file, angle, job.Suffix, job.Overwrite)
		if err != nil {
			return nil, errors.Errorf("planning %s: %w", file, err)
		}

		plan = append(plan, PlannedFile{
			Source:      file,
			Destination: dest,
			Format:      codec.FormatFor(dest).String(),
		})
	}

	return plan, nil
}
