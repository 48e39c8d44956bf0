// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] encapsulates the timeout safety valve pattern
// (select with a time.After fallback) so individual tests never hang
// when a worker fails to deliver its outcome.
//
// [RequireEventually] polls a condition until it holds or a deadline
// passes. Engine tests use it to observe the shared progress counter,
// which the control side may only sample, never block on.
//
// All helpers call t.Fatalf on failure; a missed outcome or a
// condition that never holds is not recoverable within the test.
package testutil
