// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"

	"github.com/hashview-tools/hashview/lib/digest"
)

// State classifies an attempt's terminal outcome. An attempt reaches
// exactly one terminal state and never leaves it.
type State int

const (
	// StateCompleted means the whole file was read and the digest
	// finalized.
	StateCompleted State = iota
	// StateCanceled means the streamer observed the cancel flag and
	// stopped without finalizing. Not a failure.
	StateCanceled
	// StateFailed means an I/O error ended the attempt. No partial
	// digest is produced.
	StateFailed
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateCompleted:
		return "completed"
	case StateCanceled:
		return "canceled"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// ErrCanceled is the error recorded on canceled outcomes. Callers
// that funnel outcomes into error-returning call sites can branch on
// it with errors.Is.
var ErrCanceled = errors.New("hashing canceled")

// Outcome is the single terminal report of an attempt.
type Outcome struct {
	// Token identifies the attempt this outcome belongs to.
	Token uint64

	// State is the terminal state.
	State State

	// Result holds the finalized digest. Only valid when State is
	// StateCompleted.
	Result digest.Result

	// Err is ErrCanceled for StateCanceled and the wrapped I/O error
	// for StateFailed. Nil on completion.
	Err error
}
