// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/hashview-tools/hashview/lib/clock"
	"github.com/hashview-tools/hashview/lib/digest"
)

// Attempt is the handle for one in-flight or completed hashing
// operation. The control side reads progress and polls the outcome;
// the streamer goroutine writes progress and sends the outcome. Those
// are the only two parties, so the shared counter needs one writer
// and the shared flag needs one writer — atomics, no mutex.
type Attempt struct {
	token uint64
	path  string
	total int64

	algorithm digest.Algorithm
	chunkSize int
	clock     clock.Clock
	logger    *slog.Logger
	started   time.Time

	// processed is written by the streamer after each fully-hashed
	// chunk and read by pollers. Monotonically non-decreasing, never
	// above total.
	processed atomic.Int64

	// cancel transitions false to true at most once per attempt and
	// is never reset.
	cancel atomic.Bool

	// outcome has capacity 1 and receives exactly one send, after the
	// final processed update.
	outcome chan Outcome
}

// Token returns the attempt's arbitration token.
func (a *Attempt) Token() uint64 { return a.token }

// Path returns the file being hashed.
func (a *Attempt) Path() string { return a.path }

// Progress returns the bytes hashed so far and the file size captured
// at submit time. Non-blocking; safe to call from any goroutine at
// any cadence.
func (a *Attempt) Progress() (processed, total int64) {
	return a.processed.Load(), a.total
}

// Fraction returns progress as a value in [0, 1]. An empty file is
// complete by definition, so total == 0 reports 1.
func (a *Attempt) Fraction() float64 {
	processed, total := a.Progress()
	if total <= 0 {
		return 1
	}
	fraction := float64(processed) / float64(total)
	if fraction > 1 {
		return 1
	}
	return fraction
}

// RequestCancel asks the streamer to stop at its next chunk boundary.
// Idempotent; calling after the attempt reached a terminal state is a
// no-op and does not disturb the delivered outcome.
func (a *Attempt) RequestCancel() {
	a.cancel.Store(true)
}

// PollOutcome returns the terminal outcome once, without blocking.
// Before the attempt finishes — and on every call after the outcome
// has been consumed — it returns false.
func (a *Attempt) PollOutcome() (Outcome, bool) {
	select {
	case outcome := <-a.outcome:
		return outcome, true
	default:
		return Outcome{}, false
	}
}

// run streams the file and posts the single outcome. Runs on the
// attempt's own goroutine.
func (a *Attempt) run() {
	outcome := a.stream()
	a.logger.Debug("attempt finished",
		"token", a.token,
		"path", a.path,
		"state", outcome.State.String())
	a.outcome <- outcome
}

// stream is the digest streamer: fixed-size chunk reads into a
// reusable buffer, each chunk fed to the incremental hasher, the
// shared counter bumped after the chunk is fully absorbed, and the
// cancel flag checked before every read. I/O errors and cancellation
// are both terminal; there are no retries.
func (a *Attempt) stream() Outcome {
	file, err := os.Open(a.path)
	if err != nil {
		return Outcome{Token: a.token, State: StateFailed, Err: fmt.Errorf("opening %s: %w", a.path, err)}
	}
	defer file.Close()

	hasher := a.algorithm.New()
	buffer := make([]byte, a.chunkSize)
	var read int64

	for {
		if a.cancel.Load() {
			return Outcome{Token: a.token, State: StateCanceled, Err: ErrCanceled}
		}

		n, err := file.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
			read += int64(n)
			// Publish only after the bytes are in the hasher, clamped
			// so a file that grew since stat cannot push the counter
			// past the recorded total. The Result carries the true
			// byte count either way.
			published := read
			if published > a.total {
				published = a.total
			}
			a.processed.Store(published)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Outcome{Token: a.token, State: StateFailed, Err: fmt.Errorf("reading %s: %w", a.path, err)}
		}
	}

	elapsed := a.clock.Now().Sub(a.started)
	result := digest.Finalize(a.algorithm, hasher, a.path, read, elapsed)
	return Outcome{Token: a.token, State: StateCompleted, Result: result}
}
