// Package game provides the program loop: it feeds input to the controller,
// applies the controller's requests and renders the active model.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hanoi/internal/application/controller"
	"github.com/younwookim/hanoi/internal/application/model"
	"github.com/younwookim/hanoi/internal/application/replay"
	"github.com/younwookim/hanoi/internal/application/state"
	"github.com/younwookim/hanoi/internal/application/system"
	"github.com/younwookim/hanoi/internal/domain/entity"
	"github.com/younwookim/hanoi/internal/infrastructure/render"
)

// ErrExit is returned by Step when the player chose EXIT
var ErrExit = errors.New("exit requested")

// Renderer draws models onto the virtual screen
type Renderer interface {
	RenderMenu(m *model.Menu, dst *ebiten.Image)
	RenderGame(g *model.Game, dst *ebiten.Image)
}

// RendererFactory builds a renderer with the assets of a theme
type RendererFactory func(theme entity.Theme) (Renderer, error)

// InputSource produces one frame of input for a window of the given size
type InputSource interface {
	GetInput(windowW, windowH int) system.UserInput
}

// Options configures a Game
type Options struct {
	Settings    entity.Settings
	NewRenderer RendererFactory
	Input       InputSource

	// Resize is called with the applied resolution after it changes. Optional.
	Resize func(res entity.Resolution)
	// Recorder receives every frame read by Update. Optional.
	Recorder *replay.Recorder
	Logger   *log.Logger
	Debug    bool
}

// Game implements ebiten.Game and owns the menu and the current game session.
type Game struct {
	mode       state.ProgramState
	menu       *model.Menu
	controller *controller.Controller

	renderer    Renderer
	newRenderer RendererFactory
	input       InputSource
	resize      func(res entity.Resolution)
	recorder    *replay.Recorder
	logger      *log.Logger
	debug       bool

	frame    int
	solved   bool
	outsideW int
	outsideH int
	virtual  *ebiten.Image
}

// New creates a Game on the main menu and loads the renderer for the
// initial theme.
func New(opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if opts.NewRenderer == nil {
		return nil, errors.New("game: renderer factory is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	r, err := opts.NewRenderer(opts.Settings.Theme)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s theme: %w", opts.Settings.Theme, err)
	}

	menu := model.NewMenu(opts.Settings)
	g := &Game{
		mode:        state.StateMenu,
		menu:        menu,
		controller:  controller.New(menu),
		renderer:    r,
		newRenderer: opts.NewRenderer,
		input:       opts.Input,
		resize:      opts.Resize,
		recorder:    opts.Recorder,
		logger:      logger,
		debug:       opts.Debug,
		outsideW:    opts.Settings.Resolution.Width,
		outsideH:    opts.Settings.Resolution.Height,
	}
	// First frame always renders
	g.controller.SetModel(menu)
	return g, nil
}

// Update reads one frame of input and steps the program.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.input == nil {
		return nil
	}

	in := g.input.GetInput(g.outsideW, g.outsideH)
	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	if err := g.Step(in); err != nil {
		if errors.Is(err, ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Step runs one iteration of the program loop with in, which must already be
// in virtual screen space. It returns ErrExit when the player chose EXIT.
func (g *Game) Step(in system.UserInput) error {
	g.frame++

	if err := g.controller.HandleInput(in, g.mode); err != nil {
		return fmt.Errorf("frame %d: %w", g.frame, err)
	}

	if g.controller.ExitRequested() {
		g.logger.Info("Exit requested", "frame", g.frame)
		return ErrExit
	}

	if g.controller.AssetPackageUpdated() {
		theme := g.menu.Settings().Theme
		r, err := g.newRenderer(theme)
		if err != nil {
			return fmt.Errorf("failed to reload assets for %s theme: %w", theme, err)
		}
		g.renderer = r
		g.logger.Info("Theme changed", "theme", theme)
	}

	if g.controller.ResolutionUpdated() {
		res := g.menu.Settings().Resolution
		if g.resize != nil {
			g.resize(res)
		}
		g.logger.Info("Resolution changed", "resolution", res)
	}
	g.controller.ResetSettingsFlags()

	if session, ok := g.controller.Model().(*model.Game); ok && !g.solved &&
		session.Notification() == entity.NotificationVictory {
		g.solved = true
		g.logger.Info("Puzzle solved", "discs", session.Board().DiscCount(), "moves", session.Moves())
	}

	if next, ok := g.controller.NextState(); ok {
		g.transition(next)
	}
	return nil
}

func (g *Game) transition(next state.ProgramState) {
	switch next {
	case state.StateMenu:
		g.controller.SetModel(g.menu)
	case state.StateGame:
		discs := g.menu.Settings().Difficulty
		g.controller.SetModel(model.NewGame(discs))
		g.solved = false
		g.logger.Debug("New game", "discs", discs)
	}
	g.logger.Info("State changed", "from", g.mode, "to", next)
	g.mode = next
}

// Draw renders the active model to the virtual screen when it changed and
// scales the virtual screen to the window.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.virtual == nil {
		g.virtual = ebiten.NewImage(entity.VirtualWidth, entity.VirtualHeight)
	}

	if g.controller.ModelUpdated() {
		g.render()
		g.controller.ResetRenderFlag()
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/entity.VirtualWidth, float64(sh)/entity.VirtualHeight)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.virtual, op)

	if g.debug {
		render.DrawDebugOverlay(screen, g.debugText())
	}
}

func (g *Game) render() {
	switch m := g.controller.Model().(type) {
	case *model.Menu:
		g.renderer.RenderMenu(m, g.virtual)
	case *model.Game:
		g.renderer.RenderGame(m, g.virtual)
	}
}

func (g *Game) debugText() string {
	s := fmt.Sprintf("TPS: %0.1f\nFrame: %d\nState: %s", ebiten.ActualTPS(), g.frame, g.mode)
	switch m := g.controller.Model().(type) {
	case *model.Menu:
		s += fmt.Sprintf("\nScreen: %s", m.CurrentMenu())
	case *model.Game:
		s += fmt.Sprintf("\nMoves: %d", m.Moves())
	}
	return s
}

// Layout reports the window size as the screen size; Draw does the scaling.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Mode returns the active top-level state
func (g *Game) Mode() state.ProgramState {
	return g.mode
}

// Menu returns the long-lived menu model
func (g *Game) Menu() *model.Menu {
	return g.menu
}

// Session returns the active game model, or nil while in the menu
func (g *Game) Session() *model.Game {
	session, _ := g.controller.Model().(*model.Game)
	return session
}

// Frame returns the number of steps run so far
func (g *Game) Frame() int {
	return g.frame
}
