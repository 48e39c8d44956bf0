// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm identifies a hash function from the registry. The zero
// value is not valid; use [Default] or [Parse].
type Algorithm string

const (
	// SHA256 is the default algorithm.
	SHA256 Algorithm = "sha256"
	// SHA512 produces a 64-byte digest.
	SHA512 Algorithm = "sha512"
	// BLAKE2b is BLAKE2b-256.
	BLAKE2b Algorithm = "blake2b"
	// BLAKE3 produces a 32-byte digest.
	BLAKE3 Algorithm = "blake3"
)

// Default returns the algorithm used when none is configured.
func Default() Algorithm { return SHA256 }

// Algorithms lists every registered algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, SHA512, BLAKE2b, BLAKE3}
}

// Parse validates a user-supplied algorithm name. Returns an error
// naming the valid choices for anything outside the registry.
func Parse(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case SHA256, SHA512, BLAKE2b, BLAKE3:
		return Algorithm(name), nil
	}
	return "", fmt.Errorf("unknown hash algorithm %q (valid: sha256, sha512, blake2b, blake3)", name)
}

// New returns a fresh incremental hasher for the algorithm. Panics on
// an unregistered Algorithm value — constructing one outside [Parse]
// or the package constants is a programmer error.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	case BLAKE2b:
		// Size 32, unkeyed. The error path only triggers for keys
		// longer than 64 bytes, so it cannot fail here.
		hasher, err := blake2b.New256(nil)
		if err != nil {
			panic("digest: BLAKE2b initialization failed: " + err.Error())
		}
		return hasher
	case BLAKE3:
		return blake3.New()
	}
	panic("digest: unknown algorithm " + string(a))
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA512:
		return 64
	default:
		return 32
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Result is a finalized digest plus the provenance the shell displays
// alongside it.
type Result struct {
	// Algorithm that produced the digest.
	Algorithm Algorithm

	// Hex is the lowercase hex encoding of the digest bytes.
	Hex string

	// Base64 is the standard (padded) base64 encoding of the same
	// digest bytes Hex encodes.
	Base64 string

	// Bytes is the number of bytes actually read and hashed.
	Bytes int64

	// Elapsed is the wall-clock duration of the hashing attempt.
	Elapsed time.Duration

	// Path is the file the digest was computed over.
	Path string
}

// Finalize sums the hasher and builds a Result. Both encodings come
// from the single sum slice, which keeps them consistent by
// construction.
func Finalize(a Algorithm, hasher hash.Hash, path string, bytes int64, elapsed time.Duration) Result {
	sum := hasher.Sum(nil)
	return Result{
		Algorithm: a,
		Hex:       hex.EncodeToString(sum),
		Base64:    base64.StdEncoding.EncodeToString(sum),
		Bytes:     bytes,
		Elapsed:   elapsed,
		Path:      path,
	}
}
