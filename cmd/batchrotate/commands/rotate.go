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
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/batchrotate/cmd/batchrotate/opts"
	"github.com/walteh/batchrotate/pkg/log"
	"github.com/walteh/batchrotate/pkg/operation"
	"github.com/walteh/batchrotate/pkg/rotate"
	"github.com/walteh/batchrotate/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// NewRotateCmd creates a new rotate command
func NewRotateCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &jobFlags{}
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate every image in a folder",
		Long: `Rotate writes a rotated copy of every image in the input folder.
It will:
1. List the images in the input folder
2. Rotate each one clockwise by the given angle, in name order
3. Write it to the output folder with the configured suffix
4. Stop after the current file on Ctrl+C`,
		Example: `  batchrotate rotate -i photos -o photos/rotated -a 270
  batchrotate rotate -i scans -o out -s "_rot{angle}" --overwrite
  batchrotate rotate -c rotate.hcl --angle 180`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "rotate").Logger().WithContext(cmd.Context())

			job, cfg, err := flags.buildJob(ctx, cmd, opts)
			if err != nil {
				return err
			}

			console := log.FromContext(ctx)
			console.Header("rotating images")

			if len(job.Files) == 0 {
				console.Warningf("no images found in %s", cfg.Input)
				return nil
			}

			var bar io.Writer
			if !noProgress {
				bar = opts.Out
			}
			return runRotation(ctx, console, job, cfg.Input, bar)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "print one line per file instead of a progress bar")

	return cmd
}

// runRotation drives the job, the run state and the console until the job ends.
// A nil bar prints one console line per file instead of a progress bar.
func runRotation(ctx context.Context, console *log.Logger, job operation.Job, input string, bar io.Writer) error {
	tracker := status.NewTracker()
	if err := tracker.Start(); err != nil {
		return errors.Errorf("starting job: %w", err)
	}

	handle := operation.NewRunner(nil).Start(ctx, job)

	console.StartJob(ctx, log.JobInfo{
		Input:  input,
		Output: job.OutputDir,
		Angle:  rotate.Normalize(job.Angle),
		Files:  len(job.Files),
	})

	var result operation.Result
	g := new(errgroup.Group)

	g.Go(func() error {
		return renderProgress(ctx, console, tracker, handle, len(job.Files), bar)
	})

	g.Go(func() error {
		select {
		case <-handle.Done():
		case <-ctx.Done():
			if tracker.RequestCancel() {
				console.Warning("cancelling, the current file will be finished")
			}
			handle.Cancel()
		}
		result = handle.Wait()
		return nil
	})

	if err := g.Wait(); err != nil {
		handle.Cancel()
		handle.Wait()
		tracker.Finish(status.OutcomeFailed)
		return err
	}

	tracker.Finish(result.Outcome)
	console.EndJob(ctx, result.Outcome, result.Processed)

	switch result.Outcome {
	case status.OutcomeSuccess:
		console.Successf("rotated %d images into %s", result.Processed, job.OutputDir)
		return nil
	case status.OutcomeCancelled:
		console.Warningf("cancelled after %d of %d images", result.Processed, result.Total)
		return errors.Errorf("rotating images: %w", result.Err)
	default:
		return errors.Errorf("rotating images: %w", result.Err)
	}
}

// renderProgress consumes the job's events until the channel is closed
func renderProgress(ctx context.Context, console *log.Logger, tracker *status.Tracker, handle *operation.Handle, total int, out io.Writer) error {
	if out == nil {
		for ev := range handle.Events() {
			tracker.Observe(ev)
			console.LogRotation(ctx, ev)
		}
		return nil
	}

	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Rotating").
		WithShowElapsedTime(false).
		WithWriter(out).
		Start()
	if err != nil {
		return errors.Errorf("starting progress bar: %w", err)
	}

	for ev := range handle.Events() {
		tracker.Observe(ev)
		bar.UpdateTitle(status.FormatProgress(ev))
		bar.Increment()
		zerolog.Ctx(ctx).Debug().Str("event", ev.String()).Msg("progress")
	}

	if _, err := bar.Stop(); err != nil {
		return errors.Errorf("stopping progress bar: %w", err)
	}
	return nil
}
