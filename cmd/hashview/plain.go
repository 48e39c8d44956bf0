// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/hashview-tools/hashview/lib/clock"
	"github.com/hashview-tools/hashview/lib/config"
	"github.com/hashview-tools/hashview/lib/engine"
)

// runPlain hashes a single file without the TUI. Stdout carries only
// the two digest lines so the output stays script-friendly; the
// progress meter and stats go to stderr, and only when stderr is a
// terminal.
func runPlain(eng *engine.Engine, clk clock.Clock, cfg *config.Config, path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	attempt, err := eng.Submit(path)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	output := termenv.NewOutput(os.Stderr)

	ticker := clk.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	// After the first interrupt, stop selecting on the context so a
	// closed Done channel cannot spin the loop. A second Ctrl-C then
	// kills the process via the restored default handler.
	interrupted := ctx.Done()

	for {
		select {
		case <-interrupted:
			attempt.RequestCancel()
			interrupted = nil
			stop()

		case <-ticker.C:
			if interactive {
				renderMeter(output, attempt)
			}
			outcome, ok := attempt.PollOutcome()
			if !ok {
				continue
			}
			if interactive {
				clearMeter(output)
			}
			return reportOutcome(output, outcome)
		}
	}
}

// renderMeter redraws the single progress line in place.
func renderMeter(output *termenv.Output, attempt *engine.Attempt) {
	processed, total := attempt.Progress()
	line := fmt.Sprintf("%3.0f%%  %s / %s",
		attempt.Fraction()*100,
		humanize.IBytes(uint64(processed)),
		humanize.IBytes(uint64(total)))
	fmt.Fprint(output, "\r")
	output.ClearLineRight()
	fmt.Fprint(output, output.String(line).Faint())
}

func clearMeter(output *termenv.Output) {
	fmt.Fprint(output, "\r")
	output.ClearLineRight()
}

// reportOutcome prints the terminal outcome. Completed digests go to
// stdout; cancellation and failure go to stderr with distinct exit
// codes.
func reportOutcome(output *termenv.Output, outcome engine.Outcome) error {
	switch outcome.State {
	case engine.StateCompleted:
		result := outcome.Result
		fmt.Printf("%s  %s\n", result.Hex, result.Path)
		fmt.Printf("%s\n", result.Base64)
		fmt.Fprintf(output, "%s\n", output.String(fmt.Sprintf("%s of %s in %s",
			result.Algorithm,
			humanize.IBytes(uint64(result.Bytes)),
			result.Elapsed.Round(time.Millisecond))).Faint())
		return nil

	case engine.StateCanceled:
		return exitError{message: "canceled", code: 130}

	default:
		if outcome.Err != nil {
			return outcome.Err
		}
		return errors.New("hashing failed")
	}
}
