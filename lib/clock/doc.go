// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for the hashing engine and its shells.
//
// The engine stamps each attempt's elapsed duration with an injected
// [Clock] instead of calling the time package directly, and the
// plain-mode progress meter drives its redraw loop off a [Ticker] from
// the same source. Production code injects [Real]; tests inject
// [Fake] and advance time deterministically, so elapsed values and
// poll cadence can be asserted exactly.
package clock
