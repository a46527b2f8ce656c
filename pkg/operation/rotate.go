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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/batchrotate/pkg/codec"
	"github.com/walteh/batchrotate/pkg/rotate"
	"github.com/walteh/batchrotate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run rotates every file of job in order on the calling goroutine.
//
// Cancellation is checked only before each file; a file that has started is
// always finished. It returns nil on success, an error wrapping ErrCancelled
// when ctx was cancelled, and any other error on the first file that fails.
// onProgress is called after each written file and may be nil.
func (e *Engine) Run(ctx context.Context, job Job, onProgress ProgressFunc) error {
	if len(job.Files) == 0 {
		return nil
	}

	logger := zerolog.Ctx(ctx)
	angle := rotate.Normalize(job.Angle)
	total := len(job.Files)

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return errors.Errorf("creating output folder: %w", err)
	}

	for i, file := range job.Files {
		if err := ctx.Err(); err != nil {
			logger.Debug().Int("processed", i).Int("total", total).Msg("cancellation observed")
			return errors.Errorf("%w after %d of %d files: %v", ErrCancelled, i, total, err)
		}

		dest, err := e.processFile(ctx, job, angle, file)
		if err != nil {
			return errors.Errorf("processing file %s: %w", file, err)
		}

		if onProgress != nil {
			onProgress(ctx, status.ProgressEvent{
				Processed:   i + 1,
				Total:       total,
				Source:      file,
				Destination: dest,
			})
		}
	}

	return nil
}

// 📄 processFile runs decode, rotate, encode and write for one file
func (e *Engine) processFile(ctx context.Context, job Job, angle int, file string) (string, error) {
	dest, err := e.resolver.Resolve(ctx, job.OutputDir, file, angle, job.Suffix, job.Overwrite)
	if err != nil {
		return "", err
	}

	img, err := codec.DecodeFile(file)
	if err != nil {
		return "", err
	}

	rotated, err := rotate.Image(img, angle)
	if err != nil {
		return "", errors.Errorf("rotating: %w", err)
	}

	// encode before touching the destination so a failed encode leaves nothing behind
	data, format, err := codec.EncodeFor(dest, rotated)
	if err != nil {
		return "", err
	}

	if err := writeDestination(dest, data, job.Overwrite); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str("source", file).
		Str("destination", dest).
		Int("angle", angle).
		Str("format", format.String()).
		Int("bytes", len(data)).
		Msg("rotated file")

	return dest, nil
}

// 💾 writeDestination writes data to dest, refusing to replace an existing file unless overwrite
func writeDestination(dest string, data []byte, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(dest, flags, 0644)
	if err != nil {
		return errors.Errorf("opening destination: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(dest) // Clean up partial file
		return errors.Errorf("writing destination: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing destination: %w", err)
	}

	return nil
}
