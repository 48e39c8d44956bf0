// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides the hash algorithm registry and the final
// digest representation used by the hashing engine.
//
// The engine itself is algorithm-agnostic: it streams bytes into any
// [Algorithm] and hands the finalized sum back as a [Result]. The
// registry covers SHA-256 (the default), SHA-512, BLAKE2b-256, and
// BLAKE3.
//
// A [Result] carries both the lowercase hex and the standard base64
// encoding of the same raw digest bytes. Both encodings are derived
// from the identical byte slice at finalization time; neither is ever
// computed independently, so they can never disagree about the digest
// they represent.
package digest
