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

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/walteh/batchrotate/cmd/batchrotate/opts"
	"github.com/walteh/batchrotate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

const exitCancelled = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ro := &opts.RootOpts{Out: os.Stdout}
	err := NewCommand(ro).ExecuteContext(ctx)
	stop()

	reportError(ro, os.Stderr, err)
	os.Exit(exitCode(err))
}

// reportError prints a failed command's error; cancellations were already announced
func reportError(ro *opts.RootOpts, stderr io.Writer, err error) {
	if err == nil || exitCode(err) == exitCancelled {
		return
	}
	if ro.Console != nil {
		ro.Console.Errorf("command failed: %v", err)
		return
	}
	logger := zerolog.New(stderr)
	logger.Error().Err(err).Msg("command failed")
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case operation.IsCancelled(err), errors.Is(err, context.Canceled):
		return exitCancelled
	default:
		return 1
	}
}
