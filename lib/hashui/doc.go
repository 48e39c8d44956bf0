// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package hashui provides the bubbletea model for the interactive
// hashview shell.
//
// The shell is a thin collaborator of the hashing engine: it submits
// attempts, samples progress on a fixed tick (never blocking the
// event loop), and renders whichever outcome the engine's arbitration
// surfaces. All concurrency lives in [engine]; this package is a
// single-goroutine state machine driven by bubbletea messages.
//
// Keyboard focus moves between the path input and the result pane
// with Tab. The path input owns plain keystrokes while focused, so
// all result-pane commands (copy, uppercase toggle, re-hash) are
// single letters that only apply there.
package hashui
