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

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/batchrotate/pkg/rotate"
	"gitlab.com/tozd/go/errors"
)

// DefaultAngle is used when neither the config nor a flag sets an angle
const DefaultAngle = 90

var (
	// ErrNoInput is returned when no input folder is configured
	ErrNoInput = errors.Base("input is required")
	// ErrNoOutput is returned when no output folder is configured
	ErrNoOutput = errors.Base("output is required")
)

// 📚 Config describes one batch rotation run
type Config struct {
	Input     string   `json:"input" yaml:"input" hcl:"input,optional"`                                 // Folder to read images from
	Output    string   `json:"output" yaml:"output" hcl:"output,optional"`                              // Folder to write rotated images to
	Angle     int      `json:"angle" yaml:"angle" hcl:"angle,optional"`                                 // Clockwise degrees, multiple of 90
	Suffix    string   `json:"suffix,omitempty" yaml:"suffix,omitempty" hcl:"suffix,optional"`          // Suffix template, may contain {angle}
	Overwrite bool     `json:"overwrite,omitempty" yaml:"overwrite,omitempty" hcl:"overwrite,optional"` // Replace existing outputs
	Recursive bool     `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"` // Scan subfolders
	Include   []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`       // Globs selecting input files
	Exclude   []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`       // Globs removing input files

	location string
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks a complete configuration and cleans its paths.
//
// A loaded file may leave fields unset for flags to fill in, so Validate runs
// on the merged result rather than inside LoadConfig.
func Validate(ctx context.Context, cfg *Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return ErrNoInput
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return ErrNoOutput
	}
	if err := rotate.ValidateAngle(cfg.Angle); err != nil {
		return errors.Errorf("angle: %w", err)
	}
	if err := rotate.ValidateSuffix(cfg.Suffix); err != nil {
		return errors.Errorf("suffix: %w", err)
	}

	cfg.Input = filepath.Clean(cfg.Input)
	cfg.Output = filepath.Clean(cfg.Output)

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("validated config")
	return nil
}

// resolveRelative joins relative folders onto the folder of the config file
func (cfg *Config) resolveRelative() {
	if cfg.location == "" {
		return
	}
	base := filepath.Dir(cfg.location)
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(base, cfg.Input)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(base, cfg.Output)
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%d°, suffix=%q, overwrite=%t)", cfg.Input, cfg.Output, cfg.Angle, cfg.Suffix, cfg.Overwrite)
}
