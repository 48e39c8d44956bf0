// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package hashui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/hashview-tools/hashview/lib/config"
	"github.com/hashview-tools/hashview/lib/digest"
	"github.com/hashview-tools/hashview/lib/engine"
)

// FocusRegion identifies which pane has keyboard focus.
type FocusRegion int

const (
	// FocusPath means keystrokes go to the path input.
	FocusPath FocusRegion = iota
	// FocusResult means single-letter commands act on the result pane.
	FocusResult
)

// tickMsg drives the fixed-cadence poll of the running attempt.
type tickMsg struct{}

// noticeFadeMsg clears the transient status notice.
type noticeFadeMsg struct{}

// Model is the top-level bubbletea model for the hashview shell.
type Model struct {
	engine *engine.Engine
	keys   KeyMap
	styles Styles

	pathInput   textinput.Model
	progressBar progress.Model

	focus FocusRegion

	// Current attempt state. attempt is nil when nothing was ever
	// submitted; hashing is false once a terminal outcome surfaced.
	attempt *engine.Attempt
	hashing bool

	// prevPath is the path on display before the running attempt
	// started, restored when a cancellation surfaces.
	prevPath string

	// Last surfaced result, if any. Display-only transforms (the
	// uppercase toggle) never modify it.
	result  *digest.Result
	errText string

	uppercase bool
	autoHash  bool

	// Progress sampled on the last tick.
	processed int64
	total     int64

	notice string
	width  int
	height int
	tick   time.Duration
}

// NewModel builds the shell model. If initialPath is non-empty it is
// placed in the path input, and submitted immediately when auto-hash
// is enabled.
func NewModel(e *engine.Engine, cfg *config.Config, initialPath string) Model {
	input := textinput.New()
	input.Placeholder = "path to file"
	input.Prompt = "> "
	input.Focus()

	bar := progress.New(progress.WithDefaultGradient())

	model := Model{
		engine:      e,
		keys:        DefaultKeyMap,
		styles:      DefaultStyles(),
		pathInput:   input,
		progressBar: bar,
		uppercase:   cfg.UppercaseHex,
		autoHash:    cfg.AutoHash,
		tick:        cfg.TickInterval(),
	}
	if initialPath != "" {
		model.pathInput.SetValue(initialPath)
	}
	return model
}

// Init implements tea.Model. Submits the initial path when auto-hash
// is on.
func (model Model) Init() tea.Cmd {
	commands := []tea.Cmd{textinput.Blink}
	if model.autoHash && strings.TrimSpace(model.pathInput.Value()) != "" {
		// The submit itself happens on the first tick so that Init
		// stays side-effect free on the model value.
		commands = append(commands, func() tea.Msg { return submitMsg{} })
	}
	return tea.Batch(commands...)
}

// submitMsg requests a submit of the current path input value.
type submitMsg struct{}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		inner := message.Width - 6
		if inner < 16 {
			inner = 16
		}
		model.pathInput.Width = inner
		model.progressBar.Width = inner
		return model, nil

	case submitMsg:
		command := model.startHashing(model.pathInput.Value())
		return model, command

	case tickMsg:
		return model.handleTick()

	case noticeFadeMsg:
		model.notice = ""
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}

	// Everything else (cursor blink, etc.) belongs to the input.
	var command tea.Cmd
	model.pathInput, command = model.pathInput.Update(message)
	return model, command
}

// handleTick samples progress and polls arbitration for an outcome.
func (model Model) handleTick() (tea.Model, tea.Cmd) {
	if !model.hashing || model.attempt == nil {
		// Stale tick from a finished attempt; nothing to reschedule.
		return model, nil
	}

	model.processed, model.total = model.attempt.Progress()

	if outcome, ok := model.engine.PollCurrent(model.attempt); ok {
		model.finishAttempt(outcome)
		return model, nil
	}
	return model, model.tickCmd()
}

// handleKey routes keyboard input by focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, regardless of focus.
	if message.String() == "ctrl+c" {
		return model, tea.Quit
	}

	if key.Matches(message, model.keys.FocusToggle) {
		if model.focus == FocusPath {
			model.focus = FocusResult
			model.pathInput.Blur()
		} else {
			model.focus = FocusPath
			model.pathInput.Focus()
		}
		return model, nil
	}

	if model.focus == FocusPath {
		return model.handlePathKeys(message)
	}
	return model.handleResultKeys(message)
}

// handlePathKeys: the input owns plain keystrokes; enter submits (or,
// with auto-hash off, just hands focus to the result pane for an
// explicit hash), esc cancels a running attempt.
func (model Model) handlePathKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Submit):
		if strings.TrimSpace(model.pathInput.Value()) == "" {
			return model, nil
		}
		if !model.autoHash {
			model.focus = FocusResult
			model.pathInput.Blur()
			return model, nil
		}
		command := model.startHashing(model.pathInput.Value())
		return model, command

	case key.Matches(message, model.keys.Cancel):
		model.requestCancel()
		return model, nil
	}

	var command tea.Cmd
	model.pathInput, command = model.pathInput.Update(message)
	return model, command
}

// handleResultKeys: single-letter commands on the result pane.
func (model Model) handleResultKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Submit):
		if strings.TrimSpace(model.pathInput.Value()) == "" {
			return model, nil
		}
		command := model.startHashing(model.pathInput.Value())
		return model, command

	case key.Matches(message, model.keys.Cancel):
		model.requestCancel()
		return model, nil

	case key.Matches(message, model.keys.CopyHex):
		if model.result == nil {
			return model, nil
		}
		model.notice = "Copied hex digest"
		return model, copyToClipboard(model.displayHex())

	case key.Matches(message, model.keys.CopyBase64):
		if model.result == nil {
			return model, nil
		}
		model.notice = "Copied base64 digest"
		return model, copyToClipboard(model.result.Base64)

	case key.Matches(message, model.keys.Uppercase):
		model.uppercase = !model.uppercase
		return model, nil

	case key.Matches(message, model.keys.AutoHash):
		model.autoHash = !model.autoHash
		return model, nil

	case key.Matches(message, model.keys.Clear):
		model.result = nil
		model.errText = ""
		model.notice = ""
		model.processed = 0
		model.total = 0
		model.pathInput.SetValue("")
		model.focus = FocusPath
		model.pathInput.Focus()
		return model, nil
	}
	return model, nil
}

// startHashing submits a new attempt for path. A submit while another
// attempt runs supersedes it: the engine's arbitration discards the
// older outcome, so nothing here needs to wait.
func (model *Model) startHashing(path string) tea.Cmd {
	path = strings.TrimSpace(path)

	// Remember what was on display for cancel-restore.
	if model.result != nil {
		model.prevPath = model.result.Path
	} else {
		model.prevPath = path
	}

	// While hashing, a tick is always in flight; reuse that chain for
	// the superseding attempt instead of starting a second one.
	chainAlive := model.hashing

	attempt, err := model.engine.Submit(path)
	if err != nil {
		model.attempt = nil
		model.hashing = false
		model.errText = err.Error()
		model.result = nil
		return nil
	}

	model.attempt = attempt
	model.hashing = true
	model.errText = ""
	model.notice = ""
	model.processed, model.total = attempt.Progress()
	if chainAlive {
		return nil
	}
	return model.tickCmd()
}

// requestCancel forwards cancellation to the running attempt. The
// terminal Canceled outcome still arrives through the tick poll, and
// path restore happens when it surfaces.
func (model *Model) requestCancel() {
	if model.hashing && model.attempt != nil {
		model.attempt.RequestCancel()
	}
}

// finishAttempt applies a surfaced outcome.
func (model *Model) finishAttempt(outcome engine.Outcome) {
	model.hashing = false

	switch outcome.State {
	case engine.StateCompleted:
		result := outcome.Result
		model.result = &result
		model.errText = ""
		model.processed = result.Bytes
		if model.total < model.processed {
			model.total = model.processed
		}

	case engine.StateCanceled:
		// Not an error: restore the previously displayed path.
		model.errText = ""
		if model.prevPath != "" {
			model.pathInput.SetValue(model.prevPath)
		}

	case engine.StateFailed:
		model.result = nil
		model.errText = outcome.Err.Error()
	}
}

func (model Model) tickCmd() tea.Cmd {
	return tea.Tick(model.tick, func(time.Time) tea.Msg { return tickMsg{} })
}

// displayHex returns the hex digest with the uppercase toggle
// applied. The stored result stays lowercase.
func (model Model) displayHex() string {
	if model.result == nil {
		return ""
	}
	if model.uppercase {
		return strings.ToUpper(model.result.Hex)
	}
	return model.result.Hex
}

// fraction returns current progress in [0, 1] for the bar.
func (model Model) fraction() float64 {
	if model.attempt != nil && model.hashing {
		return model.attempt.Fraction()
	}
	if model.result != nil {
		return 1
	}
	return 0
}

// View implements tea.Model.
func (model Model) View() string {
	width := model.width
	if width <= 0 {
		width = 80
	}

	var sections []string

	title := fmt.Sprintf("hashview — %s", model.engine.Algorithm())
	if model.hashing {
		title = fmt.Sprintf("%s — %3.0f%%", title, model.fraction()*100)
	}
	sections = append(sections, model.styles.Title.Render(title))

	pathPanel := model.styles.PanelBlur
	if model.focus == FocusPath {
		pathPanel = model.styles.PanelFocus
	}
	sections = append(sections, pathPanel.Render(model.pathInput.View()))

	if model.hashing {
		meter := fmt.Sprintf("%s  %s / %s",
			model.progressBar.ViewAs(model.fraction()),
			humanize.IBytes(uint64(model.processed)),
			humanize.IBytes(uint64(model.total)))
		sections = append(sections, meter)
	}

	resultPanel := model.styles.PanelBlur
	if model.focus == FocusResult {
		resultPanel = model.styles.PanelFocus
	}
	sections = append(sections, resultPanel.Render(model.renderResult(width-6)))

	if model.errText != "" {
		sections = append(sections, model.styles.Error.Render(ansi.Truncate("error: "+model.errText, width, "…")))
	}
	if model.notice != "" {
		sections = append(sections, model.styles.Notice.Render(model.notice))
	}
	sections = append(sections, model.styles.Help.Render(model.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderResult renders the digest pane contents.
func (model Model) renderResult(width int) string {
	if width < 16 {
		width = 16
	}
	if model.result == nil {
		if model.hashing {
			return model.styles.Faint.Render("hashing…")
		}
		return model.styles.Faint.Render("no digest yet")
	}

	result := model.result
	lines := []string{
		model.styles.Label.Render("hex    ") + model.styles.Digest.Render(ansi.Truncate(model.displayHex(), width, "…")),
		model.styles.Label.Render("base64 ") + model.styles.Digest.Render(ansi.Truncate(result.Base64, width, "…")),
		model.styles.Faint.Render(ansi.Truncate(fmt.Sprintf("%s  %s in %s  %s",
			result.Algorithm,
			humanize.IBytes(uint64(result.Bytes)),
			result.Elapsed.Round(time.Millisecond),
			result.Path), width, "…")),
	}
	return strings.Join(lines, "\n")
}

// helpLine renders the context-sensitive key hints.
func (model Model) helpLine() string {
	pairs := []key.Binding{model.keys.FocusToggle, model.keys.Submit, model.keys.Cancel}
	if model.focus == FocusResult {
		pairs = append(pairs,
			model.keys.CopyHex, model.keys.CopyBase64,
			model.keys.Uppercase, model.keys.AutoHash,
			model.keys.Clear, model.keys.Quit)
	}
	var parts []string
	for _, binding := range pairs {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " · ")
}
