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
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/batchrotate/cmd/batchrotate/opts"
	"github.com/walteh/batchrotate/pkg/log"
	"github.com/walteh/batchrotate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &jobFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show where each image would be written",
		Long: `Plan lists the images rotate would process and the file each one
would be written to. Nothing is read, created or overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "plan").Logger().WithContext(cmd.Context())

			job, cfg, err := flags.buildJob(ctx, cmd, opts)
			if err != nil {
				return err
			}

			console := log.FromContext(ctx)
			console.Header("planning rotation")

			if len(job.Files) == 0 {
				console.Warningf("no images found in %s", cfg.Input)
				return nil
			}

			plan, err := operation.New(operation.Options{}).Plan(ctx, job)
			if err != nil {
				return errors.Errorf("planning rotation: %w", err)
			}

			for _, p := range plan {
				console.LogPlanned(ctx, p.Source, p.Destination, p.Format)
			}
			console.LogNewline()
			console.Infof("%d images would be written to %s", len(plan), job.OutputDir)

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
