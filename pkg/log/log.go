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

package log

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/batchrotate/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 30 // Base width for source filename
	counterWidth = 9  // Width for the [n/total] counter
)

// 📦 JobInfo describes a batch rotation for the console header
type JobInfo struct {
	Input  string // Folder images are read from
	Output string // Folder rotated images go to
	Angle  int    // Normalized clockwise angle
	Files  int    // Number of files in the job
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *JobInfo
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context; commands rely on the root
// command having stored one
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func formatFileLine(symbol string, symbolColor color.Attribute, source, destination, counter string) string {
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(symbol),
		fmt.Sprintf("%-*s", nameWidth, filepath.Base(source)),
		color.New(color.Faint).Sprint("→"),
		fmt.Sprintf("%-*s %s", nameWidth, filepath.Base(destination), color.New(color.FgBlue).Sprint(counter)))
}

// 📝 formatRotation formats a completed file for display
func (l *Logger) formatRotation(ev status.ProgressEvent) string {
	counter := fmt.Sprintf("%-*s", counterWidth, fmt.Sprintf("[%d/%d]", ev.Processed, ev.Total))
	return formatFileLine("✓", color.FgGreen, ev.Source, ev.Destination, counter)
}

// 📝 LogRotation logs a completed file
func (l *Logger) LogRotation(ctx context.Context, ev status.ProgressEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatRotation(ev))

	l.zlog.Info().
		Str("source", ev.Source).
		Str("destination", ev.Destination).
		Int("processed", ev.Processed).
		Int("total", ev.Total).
		Msg("file rotated")
}

// 📝 LogPlanned logs a file a dry run would write
func (l *Logger) LogPlanned(ctx context.Context, source, destination, format string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, formatFileLine("•", color.FgCyan, source, destination, format))

	l.zlog.Debug().
		Str("source", source).
		Str("destination", destination).
		Str("format", format).
		Msg("planned file")
}

// 📝 StartJob starts a new batch and prints its header
func (l *Logger) StartJob(ctx context.Context, job JobInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &job

	fmt.Fprintf(l.console, "[rotating %s]\n",
		color.New(color.FgCyan).Sprint(job.Input))

	fmt.Fprintf(l.console, "%s %s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprintf("%d°", job.Angle),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d files", job.Files),
		color.New(color.Faint).Sprint("→ "+job.Output))

	l.zlog.Info().
		Str("input", job.Input).
		Str("output", job.Output).
		Int("angle", job.Angle).
		Int("files", job.Files).
		Msg("starting batch rotation")
}

// 📝 EndJob ends the current batch and prints the outcome summary
func (l *Logger) EndJob(ctx context.Context, outcome status.Outcome, processed int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	fmt.Fprintln(l.console, status.FormatOutcome(outcome, processed, l.current.Files))

	l.zlog.Info().
		Str("outcome", outcome.String()).
		Int("rotated", processed).
		Int("files", l.current.Files).
		Msg("batch rotation complete")

	l.current = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("batchrotate")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
