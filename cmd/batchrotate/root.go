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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/batchrotate/cmd/batchrotate/commands"
	"github.com/walteh/batchrotate/cmd/batchrotate/opts"
	"github.com/walteh/batchrotate/pkg/log"
)

// NewCommand builds the root command and its subcommands around ro
func NewCommand(ro *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "batchrotate",
		Short: "Rotate a folder of images by multiples of 90 degrees",
		Long: `batchrotate writes rotated copies of the images in a folder, keeping
each file's format and naming the copies with a configurable suffix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, ro)
		},
	}

	addRootFlags(rootCmd, ro)

	rootCmd.AddCommand(
		commands.NewRotateCmd(ro),
		commands.NewPlanCmd(ro),
		NewVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, "config", "c", "", "job file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog and the console logger based on flags
func setupLogging(cmd *cobra.Command, ro *opts.RootOpts) {
	level := zerolog.InfoLevel
	if ro.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	if existing := zerolog.Ctx(cmd.Context()); existing.GetLevel() != zerolog.Disabled {
		logger = existing.Level(level)
	}

	if ro.Out == nil {
		ro.Out = os.Stdout
	}
	if ro.Console == nil {
		consoleLevel := zerolog.Disabled
		if ro.Debug {
			consoleLevel = zerolog.DebugLevel
		}
		ro.Console = log.New(ro.Out, consoleLevel)
	}

	cmd.SetContext(log.NewContext(logger.WithContext(cmd.Context()), ro.Console))
}
