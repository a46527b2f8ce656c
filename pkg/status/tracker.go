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

package status

import (
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 🚦 State is the lifecycle state of a front end driving rotation jobs
type State int

const (
	StateIdle       State = iota // No job running
	StateRunning                 // A job is processing files
	StateCancelling              // Cancellation requested, waiting for the current file
)

// String returns a string representation of State
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// 🏁 Outcome is the terminal result of a job
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeCancelled
	OutcomeFailed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrBusy is returned when a job is started while another is still active
var ErrBusy = errors.Base("a job is already running")

// 🎛️ Tracker is the front end state machine: Idle -> Running -> (Cancelling) -> Idle.
//
// It holds no reference to the engine; it is driven by progress events and
// the job's terminal outcome. Safe for concurrent use.
type Tracker struct {
	mu          sync.RWMutex
	state       State
	last        ProgressEvent
	lastOutcome Outcome
}

// 🏭 NewTracker returns an idle tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// State returns the current state
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Start moves Idle to Running
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateIdle {
		return errors.Errorf("%w: state is %s", ErrBusy, t.state)
	}
	t.state = StateRunning
	t.last = ProgressEvent{}
	t.lastOutcome = OutcomeUnknown
	return nil
}

// RequestCancel moves Running to Cancelling and reports whether it did
func (t *Tracker) RequestCancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning {
		return false
	}
	t.state = StateCancelling
	return true
}

// Observe records the latest progress event
func (t *Tracker) Observe(ev ProgressEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateIdle {
		return
	}
	t.last = ev
}

// Finish returns to Idle and records the outcome
func (t *Tracker) Finish(outcome Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateIdle
	t.lastOutcome = outcome
}

// Progress returns the latest observed event
func (t *Tracker) Progress() ProgressEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}

// LastOutcome returns the outcome of the most recent finished job
func (t *Tracker) LastOutcome() Outcome {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastOutcome
}

// ControlsEnabled reports whether a front end should accept a new job
func (t *Tracker) ControlsEnabled() bool {
	return t.State() == StateIdle
}
