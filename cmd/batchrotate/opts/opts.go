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

package opts

import (
	"context"
	"io"

	"github.com/walteh/batchrotate/pkg/config"
	"github.com/walteh/batchrotate/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string      // Optional job file, flags override its values
	Debug      bool        // Debug level for structured logs
	Out        io.Writer   // Console destination
	Console    *log.Logger // User-facing logger, created on first use when nil
}

// LoadConfig loads the job file, returning nil when none was given
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	if o.ConfigFile == "" {
		return nil, nil
	}
	cfg, err := config.LoadConfig(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
