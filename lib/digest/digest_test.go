// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/base64"
	"encoding/hex"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, name := range []string{"sha256", "sha512", "blake2b", "blake3"} {
		algorithm, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
		if algorithm.String() != name {
			t.Errorf("Parse(%q) = %q", name, algorithm)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("md5"); err == nil {
		t.Error("Parse(md5) should fail: not in the registry")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse of empty string should fail")
	}
}

func TestDigestSizes(t *testing.T) {
	for _, algorithm := range Algorithms() {
		hasher := algorithm.New()
		if got := len(hasher.Sum(nil)); got != algorithm.Size() {
			t.Errorf("%s digest is %d bytes, Size() says %d", algorithm, got, algorithm.Size())
		}
	}
}

// SHA-256 of the empty input is a fixed, well-known value. This pins
// the registry to the real algorithm rather than just any hash.Hash.
func TestEmptyInputSHA256(t *testing.T) {
	const wantHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	result := Finalize(SHA256, SHA256.New(), "", 0, 0)
	if result.Hex != wantHex {
		t.Errorf("empty SHA-256 hex = %s, want %s", result.Hex, wantHex)
	}
}

func TestDeterminism(t *testing.T) {
	content := []byte("the same bytes, hashed twice")
	for _, algorithm := range Algorithms() {
		first := algorithm.New()
		first.Write(content)
		second := algorithm.New()
		second.Write(content)

		a := Finalize(algorithm, first, "a", int64(len(content)), time.Second)
		b := Finalize(algorithm, second, "b", int64(len(content)), 2*time.Second)
		if a.Hex != b.Hex {
			t.Errorf("%s: identical input produced %s and %s", algorithm, a.Hex, b.Hex)
		}
	}
}

// The hex and base64 fields must encode the identical digest bytes.
func TestEncodingConsistency(t *testing.T) {
	content := []byte("cross-encoding check")
	for _, algorithm := range Algorithms() {
		hasher := algorithm.New()
		hasher.Write(content)
		result := Finalize(algorithm, hasher, "x", int64(len(content)), 0)

		fromHex, err := hex.DecodeString(result.Hex)
		if err != nil {
			t.Fatalf("%s: decoding hex: %v", algorithm, err)
		}
		fromBase64, err := base64.StdEncoding.DecodeString(result.Base64)
		if err != nil {
			t.Fatalf("%s: decoding base64: %v", algorithm, err)
		}
		if string(fromHex) != string(fromBase64) {
			t.Errorf("%s: hex and base64 encode different bytes", algorithm)
		}
		if len(fromHex) != algorithm.Size() {
			t.Errorf("%s: digest is %d bytes, want %d", algorithm, len(fromHex), algorithm.Size())
		}
	}
}

func TestResultMetadata(t *testing.T) {
	hasher := SHA256.New()
	hasher.Write([]byte("abc"))
	result := Finalize(SHA256, hasher, "/tmp/f", 3, 1500*time.Millisecond)

	if result.Bytes != 3 {
		t.Errorf("Bytes = %d, want 3", result.Bytes)
	}
	if result.Elapsed != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v", result.Elapsed)
	}
	if result.Path != "/tmp/f" {
		t.Errorf("Path = %q", result.Path)
	}
}
