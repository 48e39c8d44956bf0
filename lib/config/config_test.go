// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Algorithm != "sha256" {
		t.Errorf("Algorithm = %s, want sha256", cfg.Algorithm)
	}
	if cfg.ChunkSizeBytes() != 1<<20 {
		t.Errorf("ChunkSizeBytes = %d, want 1 MiB", cfg.ChunkSizeBytes())
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval = %v, want 100ms", cfg.TickInterval())
	}
	if !cfg.AutoHash {
		t.Error("AutoHash should default to true")
	}
}

func TestLoadUnsetEnvUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load without %s = %+v, want defaults", EnvVar, cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashview.yaml")
	content := "algorithm: blake3\ntick_millis: 50\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Algorithm != "blake3" {
		t.Errorf("Algorithm = %s", cfg.Algorithm)
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval())
	}
	// Unspecified fields keep their defaults.
	if cfg.ChunkMiB != 1 {
		t.Errorf("ChunkMiB = %d, want default 1", cfg.ChunkMiB)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile of a missing file should fail")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("algorithm: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile of malformed YAML should fail")
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = "md5" }},
		{"zero chunk", func(c *Config) { c.ChunkMiB = 0 }},
		{"huge chunk", func(c *Config) { c.ChunkMiB = 1024 }},
		{"tick too fast", func(c *Config) { c.TickMillis = 1 }},
		{"tick too slow", func(c *Config) { c.TickMillis = 10000 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject")
			}
		})
	}
}

func TestParsedAlgorithm(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "blake2b"
	if got := cfg.ParsedAlgorithm().String(); got != "blake2b" {
		t.Errorf("ParsedAlgorithm = %s", got)
	}
}
