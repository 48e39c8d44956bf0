// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package hashui

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hashview-tools/hashview/lib/config"
	"github.com/hashview-tools/hashview/lib/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	return NewModel(engine.New(engine.Options{}), cfg, "")
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// update drives the model like the bubbletea runtime, discarding the
// returned command.
func update(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	next, _ := model.Update(message)
	return next.(Model)
}

// runToOutcome ticks the model until the running attempt surfaces a
// terminal outcome.
func runToOutcome(t *testing.T, model Model) Model {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for model.hashing {
		if time.Now().After(deadline) {
			t.Fatal("attempt never surfaced an outcome")
		}
		model = update(t, model, tickMsg{})
		time.Sleep(time.Millisecond)
	}
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitAndComplete(t *testing.T) {
	content := []byte("shell-driven hashing")
	path := writeFile(t, "data", content)

	model := newTestModel(t)
	model.pathInput.SetValue(path)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if !model.hashing {
		t.Fatal("enter with auto-hash on should start hashing")
	}

	model = runToOutcome(t, model)
	if model.result == nil {
		t.Fatalf("no result after completion (err: %s)", model.errText)
	}

	want := sha256.Sum256(content)
	if model.result.Hex != hex.EncodeToString(want[:]) {
		t.Errorf("hex = %s", model.result.Hex)
	}
	if model.errText != "" {
		t.Errorf("errText = %q, want empty", model.errText)
	}
}

func TestSubmitMissingFileShowsError(t *testing.T) {
	model := newTestModel(t)
	model.pathInput.SetValue(filepath.Join(t.TempDir(), "missing"))
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.hashing {
		t.Error("stat failure should not leave the model hashing")
	}
	if model.errText == "" {
		t.Error("stat failure should surface an error")
	}
}

func TestUppercaseToggleIsDisplayOnly(t *testing.T) {
	path := writeFile(t, "data", []byte("case check"))

	model := newTestModel(t)
	model.pathInput.SetValue(path)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runToOutcome(t, model)

	lower := model.result.Hex

	model = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model = update(t, model, keyRunes("u"))

	if model.displayHex() != strings.ToUpper(lower) {
		t.Errorf("displayHex = %s, want uppercase", model.displayHex())
	}
	if model.result.Hex != lower {
		t.Error("stored result was case-folded by the display toggle")
	}

	model = update(t, model, keyRunes("u"))
	if model.displayHex() != lower {
		t.Errorf("displayHex after second toggle = %s", model.displayHex())
	}
}

// A surfaced cancellation restores the previously displayed path and
// reports no error.
func TestCanceledOutcomeRestoresPath(t *testing.T) {
	pathA := writeFile(t, "a", []byte("first"))
	pathB := writeFile(t, "b", []byte("second"))

	model := newTestModel(t)
	model.pathInput.SetValue(pathA)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runToOutcome(t, model)
	if model.result == nil {
		t.Fatal("first hash did not complete")
	}

	model.pathInput.SetValue(pathB)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	// Deliver the terminal cancellation directly: the engine-side
	// cancel path is covered by engine tests; here the concern is the
	// shell's restore behavior.
	model.finishAttempt(engine.Outcome{Token: model.attempt.Token(), State: engine.StateCanceled, Err: engine.ErrCanceled})

	if model.hashing {
		t.Error("canceled outcome should stop hashing")
	}
	if model.errText != "" {
		t.Errorf("cancellation is not an error, got %q", model.errText)
	}
	if model.pathInput.Value() != pathA {
		t.Errorf("path = %s, want restored %s", model.pathInput.Value(), pathA)
	}
}

func TestFailedOutcomeClearsResult(t *testing.T) {
	path := writeFile(t, "data", []byte("ok"))

	model := newTestModel(t)
	model.pathInput.SetValue(path)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runToOutcome(t, model)

	model.hashing = true
	model.finishAttempt(engine.Outcome{State: engine.StateFailed, Err: os.ErrPermission})

	if model.result != nil {
		t.Error("failed outcome should clear the stale result")
	}
	if model.errText == "" {
		t.Error("failed outcome should surface its error")
	}
}

// Submitting B while A runs: only B's outcome may surface, whatever
// order the workers finish in.
func TestSupersedingSubmitSurfacesOnlyNewest(t *testing.T) {
	pathA := writeFile(t, "a", []byte("will be superseded"))
	pathB := writeFile(t, "b", []byte("the one that counts"))

	model := newTestModel(t)
	model.pathInput.SetValue(pathA)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	model.pathInput.SetValue(pathB)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	model = runToOutcome(t, model)
	if model.result == nil {
		t.Fatalf("no result surfaced (err: %s)", model.errText)
	}
	if model.result.Path != pathB {
		t.Errorf("surfaced result for %s, want %s", model.result.Path, pathB)
	}
}

func TestClearResetsEverything(t *testing.T) {
	path := writeFile(t, "data", []byte("to be cleared"))

	model := newTestModel(t)
	model.pathInput.SetValue(path)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runToOutcome(t, model)

	model = update(t, model, tea.KeyMsg{Type: tea.KeyTab})
	model = update(t, model, keyRunes("x"))

	if model.result != nil || model.errText != "" || model.pathInput.Value() != "" {
		t.Error("clear should reset result, error, and path input")
	}
	if model.focus != FocusPath {
		t.Error("clear should return focus to the path input")
	}
}

func TestViewRendersDigest(t *testing.T) {
	content := []byte("rendered")
	path := writeFile(t, "data", content)

	model := newTestModel(t)
	model = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	model.pathInput.SetValue(path)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runToOutcome(t, model)

	want := sha256.Sum256(content)
	view := model.View()
	if !strings.Contains(view, hex.EncodeToString(want[:])) {
		t.Error("view does not contain the hex digest")
	}
}

func TestQuitFromResultPane(t *testing.T) {
	model := newTestModel(t)
	model = update(t, model, tea.KeyMsg{Type: tea.KeyTab})

	_, command := model.Update(keyRunes("q"))
	if command == nil {
		t.Fatal("q in result pane should quit")
	}
	if msg := command(); msg != (tea.QuitMsg{}) {
		t.Errorf("command produced %T, want tea.QuitMsg", msg)
	}
}
