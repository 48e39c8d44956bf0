// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package engine implements the background file-hashing engine: it
// streams a file through a digest function on its own goroutine,
// publishes progress through a lock-free counter, honors cooperative
// cancellation, and delivers exactly one terminal outcome per attempt.
//
// # Attempts and tokens
//
// [Engine.Submit] starts one [Attempt] per call. Every attempt carries
// a process-wide strictly increasing token, and the engine remembers
// only the most recent one. Outcomes bearing any older token are
// stale — the attempt was superseded by a newer submit — and
// [Engine.Accept] rejects them, so a slow attempt for a file the
// caller has moved on from can never clobber the current result.
// Superseded attempts are not interrupted; their goroutines run to
// completion and their outcomes are simply discarded.
//
// # Polling, not blocking
//
// The control side never blocks on the engine. [Attempt.Progress] is
// an atomic read of the shared byte counter, and
// [Attempt.PollOutcome] is a non-blocking receive. The intended usage
// is a fixed-cadence tick (the TUI uses ~100 ms) that samples both.
//
// # Cancellation
//
// [Attempt.RequestCancel] sets a shared flag that the streamer checks
// once per chunk, before starting the next read. Cancellation latency
// is therefore bounded by one chunk read (1 MiB by default). This is
// a contract, not an implementation detail: there is no preemption,
// no forced goroutine termination, and an in-progress read always
// finishes. Cancellation is a first-class terminal state, distinct
// from failure, so shells can restore their prior display without
// showing an error.
package engine
