// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

// hashview computes a cryptographic digest of a file while keeping an
// interactive terminal UI responsive. The hashing itself runs on a
// background goroutine; the UI only ever polls it.
//
// Two modes of operation:
//
// TUI mode (default): a bubbletea shell with a path input, a live
// progress bar, cancellation, copy-to-clipboard, and an uppercase-hex
// toggle. An optional path argument pre-fills the input and, with
// auto-hash enabled, is hashed immediately.
//
// Plain mode (--plain): hashes one file and prints the hex and base64
// digests to stdout, with a live progress meter on stderr when stderr
// is a terminal. Ctrl-C cancels the attempt cooperatively and exits
// with status 130.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hashview-tools/hashview/lib/clock"
	"github.com/hashview-tools/hashview/lib/config"
	"github.com/hashview-tools/hashview/lib/digest"
	"github.com/hashview-tools/hashview/lib/engine"
	"github.com/hashview-tools/hashview/lib/hashui"
	"github.com/hashview-tools/hashview/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries a specific process exit status, used for the
// conventional 130 on interrupt.
type exitError struct {
	message string
	code    int
}

func (e exitError) Error() string { return e.message }

func (e exitError) ExitCode() int { return e.code }

func run() error {
	var configPath string
	var algorithmFlag string
	var plain bool
	var logOutput string

	flagSet := pflag.NewFlagSet("hashview", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to hashview.yaml (default: $"+config.EnvVar+" or built-in defaults)")
	flagSet.StringVar(&algorithmFlag, "algorithm", "", "digest algorithm: sha256, sha512, blake2b, blake3 (overrides config)")
	flagSet.BoolVar(&plain, "plain", false, "non-interactive: hash the file argument and print the digest")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing, matching the other modes
	// of invocation.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("hashview")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if algorithmFlag != "" {
		if _, err := digest.Parse(algorithmFlag); err != nil {
			return err
		}
		cfg.Algorithm = algorithmFlag
	}

	logger, closeLogger, err := openLogger(logOutput)
	if err != nil {
		return err
	}
	defer closeLogger()

	eng := engine.New(engine.Options{
		Algorithm: cfg.ParsedAlgorithm(),
		ChunkSize: cfg.ChunkSizeBytes(),
		Clock:     clock.Real(),
		Logger:    logger,
	})

	if plain {
		if path == "" {
			return fmt.Errorf("--plain requires a file argument")
		}
		return runPlain(eng, clock.Real(), cfg, path)
	}

	model := hashui.NewModel(eng, cfg, path)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// loadConfig resolves the config source: explicit flag, else the
// environment variable, else built-in defaults.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openLogger builds the engine logger. Without --log-output, records
// are discarded: in TUI mode stderr belongs to the renderer, and in
// plain mode it belongs to the progress meter.
func openLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", logOutput, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `hashview — file digests with a responsive terminal UI.

By default, opens the interactive shell. Type or paste a path, press
enter to hash it, esc to cancel mid-flight. The digest appears as both
lowercase hex and base64; tab moves to the result pane where c/b copy
either encoding, u toggles uppercase hex, and a toggles auto-hash.

Usage:
  hashview [flags] [path]

Examples:
  # Open the shell
  hashview

  # Open the shell with a file pre-loaded (hashed immediately when
  # auto-hash is on)
  hashview ./release.tar.gz

  # Script-friendly: print the digest and exit
  hashview --plain --algorithm blake3 ./release.tar.gz

Configuration is read from the file named by $%s or --config;
without either, built-in defaults apply (sha256, 1 MiB chunks, 100 ms
UI tick).

Flags:
`, config.EnvVar)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
