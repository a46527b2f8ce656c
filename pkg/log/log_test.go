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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/batchrotate/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_rotation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogRotation(context.Background(), status.ProgressEvent{
					Processed:   1,
					Total:       2,
					Source:      "/in/a.jpg",
					Destination: "/out/a_r90.jpg",
				})
			},
			wantLogs: []string{
				"✓ a.jpg                          → a_r90.jpg                      [1/2]",
			},
		},
		{
			name: "log_planned",
			op: func(t *testing.T, logger *Logger) {
				logger.LogPlanned(context.Background(), "/in/b.png", "/out/b_r90.png", "PNG")
			},
			wantLogs: []string{
				"• b.png                          → b_r90.png                      PNG",
			},
		},
		{
			name: "log_job",
			op: func(t *testing.T, logger *Logger) {
				logger.StartJob(context.Background(), JobInfo{
					Input:  "/tmp/in",
					Output: "/tmp/out",
					Angle:  90,
					Files:  2,
				})
				logger.LogRotation(context.Background(), status.ProgressEvent{
					Processed:   1,
					Total:       2,
					Source:      "/tmp/in/a.jpg",
					Destination: "/tmp/out/a_r90.jpg",
				})
				logger.EndJob(context.Background(), status.OutcomeCancelled, 1)
			},
			wantLogs: []string{
				"[rotating /tmp/in]",
				"◆ 90° • 2 files → /tmp/out",
				"✓ a.jpg                          → a_r90.jpg                      [1/2]",
				"⏹ cancelled  1/2 files rotated",
			},
		},
		{
			name: "end_without_start",
			op: func(t *testing.T, logger *Logger) {
				logger.EndJob(context.Background(), status.OutcomeSuccess, 0)
				logger.Info("still here")
			},
			wantLogs: []string{
				"ℹ️  still here",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %d", 2)
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success 2",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("rotating images")
			},
			wantLogs: []string{
				"batchrotate • rotating images",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
