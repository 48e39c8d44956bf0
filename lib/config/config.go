// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for hashview.
//
// Configuration comes from a single YAML file named by either the
// HASHVIEW_CONFIG environment variable or the --config flag. There is
// no directory discovery and no environment-variable overrides of
// individual values; the file is the single source of truth. When
// neither the variable nor the flag is set, the built-in defaults
// apply — unlike a service, a desktop utility must run unconfigured.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hashview-tools/hashview/lib/digest"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "HASHVIEW_CONFIG"

// Bounds enforced by Validate.
const (
	minChunkMiB = 1
	maxChunkMiB = 64

	minTickMillis = 16
	maxTickMillis = 2000
)

// Config is the full hashview configuration.
type Config struct {
	// Algorithm names the digest algorithm: sha256, sha512, blake2b,
	// or blake3.
	Algorithm string `yaml:"algorithm"`

	// ChunkMiB is the streamer read size in MiB. Bounds cancellation
	// latency: one chunk read.
	ChunkMiB int `yaml:"chunk_mib"`

	// TickMillis is the UI poll cadence in milliseconds.
	TickMillis int `yaml:"tick_millis"`

	// UppercaseHex renders hex digests in uppercase. Display-only;
	// stored results are always lowercase.
	UppercaseHex bool `yaml:"uppercase_hex"`

	// AutoHash submits immediately when a new path is entered,
	// instead of waiting for an explicit hash action.
	AutoHash bool `yaml:"auto_hash"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Algorithm:    digest.Default().String(),
		ChunkMiB:     1,
		TickMillis:   100,
		UppercaseHex: false,
		AutoHash:     true,
	}
}

// Load reads the file named by HASHVIEW_CONFIG, or returns defaults
// when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a specific config file. Fields absent
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its documented range.
func (c *Config) Validate() error {
	if _, err := digest.Parse(c.Algorithm); err != nil {
		return err
	}
	if c.ChunkMiB < minChunkMiB || c.ChunkMiB > maxChunkMiB {
		return fmt.Errorf("chunk_mib %d outside [%d, %d]", c.ChunkMiB, minChunkMiB, maxChunkMiB)
	}
	if c.TickMillis < minTickMillis || c.TickMillis > maxTickMillis {
		return fmt.Errorf("tick_millis %d outside [%d, %d]", c.TickMillis, minTickMillis, maxTickMillis)
	}
	return nil
}

// ParsedAlgorithm returns the validated Algorithm value. Call only
// after Validate (or on a Load/LoadFile result, which validates).
func (c *Config) ParsedAlgorithm() digest.Algorithm {
	algorithm, err := digest.Parse(c.Algorithm)
	if err != nil {
		panic("config: ParsedAlgorithm on unvalidated config: " + err.Error())
	}
	return algorithm
}

// ChunkSizeBytes converts ChunkMiB to bytes.
func (c *Config) ChunkSizeBytes() int {
	return c.ChunkMiB << 20
}

// TickInterval converts TickMillis to a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}
