package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/canvas-runner/internal/config"
	"github.com/vovakirdan/canvas-runner/internal/core"
	"github.com/vovakirdan/canvas-runner/internal/games/runner"
)

// Host implements ebiten.Game around one runner session.
// Update ticks the game into a draw list; Draw replays that list onto the
// screen, so the simulation runs exactly once per ebiten tick.
type Host struct {
	game      *runner.Game
	frame     *core.DrawList
	logger    *log.Logger
	lastState runner.State
	width     int
	height    int
	touches   []ebiten.TouchID
}

// NewHost builds a session on a canvas of rt.CanvasW x rt.CanvasH pixels.
func NewHost(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) *Host {
	g := runner.New(cfg, rt)
	return &Host{
		game:      g,
		frame:     core.NewDrawList(rt.CanvasW, rt.CanvasH, glyphWidth),
		logger:    logger,
		lastState: g.State(),
		width:     int(rt.CanvasW),
		height:    int(rt.CanvasH),
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if h.jumpPressed() {
		h.game.OnJumpPressed()
	}

	h.frame.Reset()
	if err := h.game.Tick(h.frame); err != nil {
		return err
	}

	state := h.game.State()
	switch {
	case state.GameOver && !h.lastState.GameOver:
		h.logger.Info("game over", "score", state.Score, "frames", state.Frames)
	case !state.GameOver && h.lastState.GameOver:
		h.logger.Info("restarted")
	}
	h.lastState = state
	return nil
}

// jumpPressed reports a new press of space, the left mouse button or a touch.
func (h *Host) jumpPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	return len(h.touches) > 0
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.frame.Replay(NewImageRenderer(screen))
}

// Layout implements ebiten.Game. The canvas keeps its logical size and
// ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	host := NewHost(cfg, rt, logger)

	ebiten.SetWindowSize(host.width, host.height)
	ebiten.SetWindowTitle("Runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	logger.Info("window opened", "width", host.width, "height", host.height, "tps", rt.TickRate)
	if err := ebiten.RunGame(host); err != nil {
		return err
	}
	logger.Info("window closed", "score", host.lastState.Score)
	return nil
}
