package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
	"github.com/vovakirdan/canvas-runner/internal/games/runner"
)

// footerRows is the number of terminal rows reserved below the canvas.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Config   config.RunnerConfig
	Runtime  core.RuntimeConfig // TickRate and Seed; the canvas size is derived from the terminal
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil for the local terminal
	Clock    func() time.Time
}

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	game      *runner.Game
	canvas    *CellCanvas
	opts      Options
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	lastState runner.State
	paused    bool
	quitting  bool
	err       error
}

// NewModel creates a model for a terminal of cols x rows cells.
func NewModel(opts Options, cols, rows int) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cols

	m := Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
	}
	m.newSession(cols, rows)
	return m
}

// newSession builds a fresh game sized to the terminal, like a page reload.
func (m *Model) newSession(cols, rows int) {
	term := m.opts.Config.Terminal
	m.canvas = NewCellCanvas(cols, max(rows-footerRows, 1), term.CellWidth, term.CellHeight)

	rt := m.opts.Runtime
	rt.CanvasW = m.canvas.CanvasWidth()
	rt.CanvasH = m.canvas.CanvasHeight()

	m.game = runner.New(m.opts.Config, rt, runner.WithClock(m.opts.Clock))
	m.lastState = m.game.State()
	m.logger.Debug("session started", "cols", cols, "rows", rows, "canvas_w", rt.CanvasW, "canvas_h", rt.CanvasH)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.logger.Debug("terminal resized, reloading", "cols", msg.Width, "rows", msg.Height)
		m.help.Width = msg.Width
		m.newSession(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Jump presses reach the game immediately,
// between frames, the way a keydown handler would.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		if !m.paused {
			m.game.OnJumpPressed()
		}
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleTick runs one frame unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	if err := m.game.Tick(m.canvas); err != nil {
		m.logger.Error("tick failed", "error", err)
		m.err = err
		return m, tea.Quit
	}

	state := m.game.State()
	switch {
	case state.GameOver && !m.lastState.GameOver:
		m.logger.Info("game over", "score", state.Score, "frames", state.Frames)
	case !state.GameOver && m.lastState.GameOver:
		m.logger.Info("restarted")
	}
	m.lastState = state

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the last frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := RenderScreen(m.opts.Renderer, m.canvas.Screen(), m.canvas.Background())
	footer := m.help.View(m.keys)
	if m.paused {
		footer = "PAUSED  " + footer
	}
	return frame + "\n" + footer
}

// State returns the game's last observed state.
func (m Model) State() runner.State {
	return m.lastState
}

// Game returns the running session.
func (m Model) Game() *runner.Game {
	return m.game
}

// Paused reports whether the frame loop is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options, cols, rows int) error {
	model := NewModel(opts, cols, rows)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
