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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/batchrotate/pkg/rotate"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "yaml",
			filename: "rotate.yaml",
			config: `
input: photos
output: /abs/out
angle: 270
suffix: _rot{angle}
overwrite: true
recursive: true
include:
  - "**/*.jpg"
exclude:
  - "skip/**"
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "photos"), cfg.Input, "relative input resolves against config folder")
				assert.Equal(t, filepath.Clean("/abs/out"), cfg.Output, "absolute output is kept")
				assert.Equal(t, 270, cfg.Angle)
				assert.Equal(t, "_rot{angle}", cfg.Suffix)
				assert.True(t, cfg.Overwrite)
				assert.True(t, cfg.Recursive)
				assert.Equal(t, []string{"**/*.jpg"}, cfg.Include)
				assert.Equal(t, []string{"skip/**"}, cfg.Exclude)
				assert.Equal(t, filepath.Join(dir, "rotate.yaml"), cfg.Location())
			},
		},
		{
			name:     "yml_extension",
			filename: "rotate.YML",
			config:   "input: in\noutput: out\nangle: 90\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, 90, cfg.Angle)
				assert.False(t, cfg.Overwrite)
				assert.Empty(t, cfg.Suffix)
			},
		},
		{
			name:     "json",
			filename: "rotate.json",
			config:   `{"input": "in", "output": "out", "angle": -90, "suffix": "_left"}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, -90, cfg.Angle)
				assert.Equal(t, "_left", cfg.Suffix)
				assert.Equal(t, filepath.Join(dir, "out"), cfg.Output)
			},
		},
		{
			name:     "hcl",
			filename: "rotate.hcl",
			config: `
input     = "in"
output    = "out"
angle     = 180
overwrite = true
include   = ["*.png", "*.gif"]
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, 180, cfg.Angle)
				assert.True(t, cfg.Overwrite)
				assert.Equal(t, []string{"*.png", "*.gif"}, cfg.Include)
				assert.Equal(t, filepath.Join(dir, "in"), cfg.Input)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "rotate.yaml",
			config:      "input: in\noutput: out\nangel: 90\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "json_unknown_field",
			filename:    "rotate.json",
			config:      `{"input": "in", "output": "out", "degrees": 90}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "hcl_syntax",
			filename:    "rotate.hcl",
			config:      `input = `,
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "rotate.hcl",
			config:      "input = \"in\"\noutput = \"out\"\nspin = 90\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:     "partial_yaml_defaults_angle",
			filename: "rotate.yaml",
			config:   "input: in\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "in"), cfg.Input)
				assert.Empty(t, cfg.Output, "unset output is left for flags")
				assert.Equal(t, DefaultAngle, cfg.Angle, "absent angle defaults")
			},
		},
		{
			name:     "partial_json_defaults_angle",
			filename: "rotate.json",
			config:   `{"output": "out"}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Empty(t, cfg.Input)
				assert.Equal(t, filepath.Join(dir, "out"), cfg.Output)
				assert.Equal(t, DefaultAngle, cfg.Angle)
			},
		},
		{
			name:     "partial_hcl_defaults_angle",
			filename: "rotate.hcl",
			config:   `suffix = "_{angle}"`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, DefaultAngle, cfg.Angle)
				assert.Equal(t, "_{angle}", cfg.Suffix)
			},
		},
		{
			name:     "explicit_zero_angle",
			filename: "rotate.yaml",
			config:   "input: in\nangle: 0\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, 0, cfg.Angle, "explicit zero is kept")
			},
		},
		{
			name:     "invalid_values_are_loaded_unvalidated",
			filename: "rotate.yaml",
			config:   "input: in\nangle: 45\nsuffix: \"a|b\"\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, 45, cfg.Angle)
				assert.Error(t, Validate(context.Background(), cfg), "Validate still rejects them")
			},
		},
		{
			name:        "unsupported_extension",
			filename:    "rotate.toml",
			config:      `input = "in"`,
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644), "writing config file")

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			cfg, err := LoadConfig(ctx, path)
			if tt.wantErr {
				require.Error(t, err, "LoadConfig should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "LoadConfig should succeed")
			if tt.check != nil {
				tt.check(t, dir, cfg)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantIs      error
		errContains string
	}{
		{name: "missing_input", cfg: Config{Output: "out", Angle: 90}, wantIs: ErrNoInput},
		{name: "blank_input", cfg: Config{Input: "  ", Output: "out", Angle: 90}, wantIs: ErrNoInput},
		{name: "missing_output", cfg: Config{Input: "in", Angle: 90}, wantIs: ErrNoOutput},
		{name: "bad_angle", cfg: Config{Input: "in", Output: "out", Angle: 45}, wantIs: rotate.ErrInvalidAngle, errContains: "angle must be a multiple of 90"},
		{name: "bad_suffix", cfg: Config{Input: "in", Output: "out", Angle: 90, Suffix: "a|b"}, wantIs: rotate.ErrInvalidSuffix},
		{name: "negative_angle", cfg: Config{Input: "in", Output: "out", Angle: -270}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := Validate(context.Background(), &cfg)
			if tt.wantIs == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestValidateCleansPaths(t *testing.T) {
	cfg := &Config{Input: "in/../in", Output: "out/", Angle: 90}
	require.NoError(t, Validate(context.Background(), cfg))
	assert.Equal(t, "in", cfg.Input, "paths are cleaned but stay relative")
	assert.Equal(t, "out", cfg.Output)
}

func TestConfigString(t *testing.T) {
	cfg := &Config{Input: "in", Output: "out", Angle: 90, Suffix: "_x"}
	assert.Equal(t, `in -> out (90°, suffix="_x", overwrite=false)`, cfg.String())
}
