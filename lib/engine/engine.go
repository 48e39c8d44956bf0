// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/hashview-tools/hashview/lib/clock"
	"github.com/hashview-tools/hashview/lib/digest"
)

// DefaultChunkSize is the streamer's read granularity. One chunk
// bounds both peak buffer memory and cancellation latency.
const DefaultChunkSize = 1 << 20

// Options configures an Engine. The zero value is usable: SHA-256,
// 1 MiB chunks, the real clock, and discarded logs.
type Options struct {
	// Algorithm selects the digest function for every attempt this
	// engine submits. Empty means digest.Default().
	Algorithm digest.Algorithm

	// ChunkSize is the streamer read size in bytes. Zero means
	// DefaultChunkSize. Smaller values tighten the cancellation
	// latency bound at the cost of more cancel-flag checks.
	ChunkSize int

	// Clock stamps attempt start times and elapsed durations. Nil
	// means clock.Real().
	Clock clock.Clock

	// Logger receives attempt lifecycle records at debug level. Nil
	// means discard.
	Logger *slog.Logger
}

// Engine dispatches hashing attempts and arbitrates their outcomes.
// Safe for concurrent use; each Submit is independent.
type Engine struct {
	algorithm digest.Algorithm
	chunkSize int
	clock     clock.Clock
	logger    *slog.Logger

	// tokens allocates attempt tokens: strictly increasing, unique,
	// not necessarily consumed gap-free.
	tokens atomic.Uint64

	// latest is the token of the most recently submitted attempt —
	// the only attempt whose outcome Accept will surface.
	latest atomic.Uint64
}

// New builds an Engine from options, applying defaults for zero
// fields.
func New(options Options) *Engine {
	if options.Algorithm == "" {
		options.Algorithm = digest.Default()
	}
	if options.ChunkSize <= 0 {
		options.ChunkSize = DefaultChunkSize
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		algorithm: options.Algorithm,
		chunkSize: options.ChunkSize,
		clock:     options.Clock,
		logger:    options.Logger,
	}
}

// Algorithm returns the digest algorithm this engine applies.
func (e *Engine) Algorithm() digest.Algorithm { return e.algorithm }

// Submit starts one hashing attempt for path and returns its handle.
//
// The new attempt's token becomes the latest before any I/O happens,
// so even a Submit that fails the stat supersedes older in-flight
// attempts — matching the "the caller has moved on" meaning of a new
// submit. Stat failure is reported synchronously and no goroutine is
// spawned; every other failure arrives through the handle's outcome.
func (e *Engine) Submit(path string) (*Attempt, error) {
	token := e.tokens.Add(1)
	e.latest.Store(token)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("hashing %s: is a directory", path)
	}

	attempt := &Attempt{
		token:     token,
		path:      path,
		total:     info.Size(),
		algorithm: e.algorithm,
		chunkSize: e.chunkSize,
		clock:     e.clock,
		logger:    e.logger,
		started:   e.clock.Now(),
		outcome:   make(chan Outcome, 1),
	}

	e.logger.Debug("attempt started",
		"token", token,
		"path", path,
		"total_bytes", info.Size(),
		"algorithm", e.algorithm.String())

	go attempt.run()
	return attempt, nil
}

// Latest returns the token of the most recent submit.
func (e *Engine) Latest() uint64 {
	return e.latest.Load()
}

// Accept reports whether an outcome is current: its token matches the
// latest submit. Stale outcomes belong to superseded attempts and
// must be discarded silently — supersession is expected behavior, not
// an error.
func (e *Engine) Accept(outcome Outcome) bool {
	return outcome.Token == e.latest.Load()
}

// PollCurrent polls the attempt and surfaces its outcome only when it
// is still the current one. A stale outcome is consumed and dropped.
// This is the single point where results reach a caller that uses the
// engine's arbitration.
func (e *Engine) PollCurrent(attempt *Attempt) (Outcome, bool) {
	outcome, ok := attempt.PollOutcome()
	if !ok {
		return Outcome{}, false
	}
	if !e.Accept(outcome) {
		e.logger.Debug("discarding stale outcome",
			"token", outcome.Token,
			"latest", e.latest.Load(),
			"state", outcome.State.String())
		return Outcome{}, false
	}
	return outcome, true
}
