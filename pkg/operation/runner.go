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

package operation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/batchrotate/pkg/status"
)

// 🏁 Result is the terminal report of an async job
type Result struct {
	JobID     uuid.UUID
	Outcome   status.Outcome
	Processed int           // Files written before the job ended
	Total     int           // Files in the job
	Err       error         // Underlying error for cancelled and failed jobs
	Duration  time.Duration // Wall time of the job
}

// 🏃 Runner executes jobs on a dedicated goroutine
type Runner struct {
	engine *Engine
}

// 🏗️ NewRunner creates a new runner
func NewRunner(engine *Engine) *Runner {
	if engine == nil {
		engine = New(Options{})
	}
	return &Runner{engine: engine}
}

// 🎟️ Handle is the caller's side of a running job
type Handle struct {
	id     uuid.UUID
	events chan status.ProgressEvent
	done   chan struct{}
	cancel context.CancelFunc
	result Result
}

// ⚡ Start runs job asynchronously and returns immediately.
//
// Events are buffered for the whole job so the worker never waits on the
// consumer. The events channel is closed before the result becomes available.
func (r *Runner) Start(ctx context.Context, job Job) *Handle {
	job = job.clone()
	id := uuid.New()

	ctx, cancel := context.WithCancel(ctx)
	logger := zerolog.Ctx(ctx).With().Str("job_id", id.String()).Logger()
	ctx = logger.WithContext(ctx)

	h := &Handle{
		id:     id,
		events: make(chan status.ProgressEvent, len(job.Files)),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(h.done)
		defer cancel()

		logger.Info().
			Int("files", len(job.Files)).
			Int("angle", job.Angle).
			Str("output", job.OutputDir).
			Bool("overwrite", job.Overwrite).
			Msg("starting rotation job")

		start := time.Now()
		processed := 0
		err := r.engine.Run(ctx, job, func(_ context.Context, ev status.ProgressEvent) {
			processed = ev.Processed
			h.events <- ev
		})
		close(h.events)

		h.result = Result{
			JobID:     id,
			Outcome:   OutcomeOf(err),
			Processed: processed,
			Total:     len(job.Files),
			Err:       err,
			Duration:  time.Since(start),
		}

		logger.Info().
			Str("outcome", h.result.Outcome.String()).
			Int("processed", processed).
			Dur("duration", h.result.Duration).
			Err(err).
			Msg("rotation job finished")
	}()

	return h
}

// ID returns the job id used in logs
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Events yields progress in file order and is closed when the job ends
func (h *Handle) Events() <-chan status.ProgressEvent {
	return h.events
}

// Done is closed once the result is available
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel requests cancellation; the current file is still finished
func (h *Handle) Cancel() {
	h.cancel()
}

// Wait blocks until the job ends and returns its result
func (h *Handle) Wait() Result {
	<-h.done
	return h.result
}
