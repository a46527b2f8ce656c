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

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/batchrotate/cmd/batchrotate/opts"
	"github.com/walteh/batchrotate/pkg/config"
	"github.com/walteh/batchrotate/pkg/operation"
	"github.com/walteh/batchrotate/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// jobFlags are the flags shared by rotate and plan
type jobFlags struct {
	input     string
	output    string
	angle     int
	suffix    string
	overwrite bool
	recursive bool
	include   []string
	exclude   []string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "folder to read images from")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "folder to write rotated images to")
	cmd.Flags().IntVarP(&f.angle, "angle", "a", config.DefaultAngle, "clockwise rotation in degrees, a multiple of 90")
	cmd.Flags().StringVarP(&f.suffix, "suffix", "s", "", `file name suffix, "{angle}" is replaced by the angle (default "_r<angle>")`)
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "replace existing outputs instead of numbering new ones")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "include images in subfolders")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "glob selecting input files, relative to the input folder")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "glob removing input files, relative to the input folder")
}

// merge applies the flags on top of the loaded config; only flags the user
// set override a config value
func (f *jobFlags) merge(cmd *cobra.Command, cfg *config.Config) *config.Config {
	if cfg == nil {
		return &config.Config{
			Input:     f.input,
			Output:    f.output,
			Angle:     f.angle,
			Suffix:    f.suffix,
			Overwrite: f.overwrite,
			Recursive: f.recursive,
			Include:   f.include,
			Exclude:   f.exclude,
		}
	}

	merged := *cfg
	changed := cmd.Flags().Changed
	if changed("input") {
		merged.Input = f.input
	}
	if changed("output") {
		merged.Output = f.output
	}
	if changed("angle") {
		merged.Angle = f.angle
	}
	if changed("suffix") {
		merged.Suffix = f.suffix
	}
	if changed("overwrite") {
		merged.Overwrite = f.overwrite
	}
	if changed("recursive") {
		merged.Recursive = f.recursive
	}
	if changed("include") {
		merged.Include = f.include
	}
	if changed("exclude") {
		merged.Exclude = f.exclude
	}
	return &merged
}

// buildJob merges flags into the config, validates the result and lists the images
func (f *jobFlags) buildJob(ctx context.Context, cmd *cobra.Command, ro *opts.RootOpts) (operation.Job, *config.Config, error) {
	loaded, err := ro.LoadConfig(ctx)
	if err != nil {
		return operation.Job{}, nil, err
	}

	cfg := f.merge(cmd, loaded)
	if err := config.Validate(ctx, cfg); err != nil {
		return operation.Job{}, nil, errors.Errorf("invalid settings (flags or config): %w", err)
	}

	job := operation.Job{
		OutputDir: cfg.Output,
		Angle:     cfg.Angle,
		Suffix:    cfg.Suffix,
		Overwrite: cfg.Overwrite,
	}
	if err := job.Validate(); err != nil {
		return operation.Job{}, nil, errors.Errorf("invalid job: %w", err)
	}

	files, err := scan.List(ctx, cfg.Input, scan.Options{
		Recursive: cfg.Recursive,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		SkipDirs:  []string{job.OutputDir},
	})
	if err != nil {
		return operation.Job{}, nil, errors.Errorf("listing images: %w", err)
	}
	job.Files = files

	return job, cfg, nil
}
