// Package controller turns normalized input into model mutations and
// top-level mode transition requests.
//
// The controller never swaps models itself. It raises flags (dirty, next
// state, exit, asset and resolution changes) that the program loop consumes
// and clears.
package controller

import (
	"errors"
	"fmt"

	"github.com/younwookim/hanoi/internal/application/model"
	"github.com/younwookim/hanoi/internal/application/state"
	"github.com/younwookim/hanoi/internal/application/system"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// Tower click boundaries in virtual screen space
const (
	leftTowerMaxX  = 320
	rightTowerMinX = 640
)

// ErrModelMismatch is returned when the active model does not belong to the given mode
var ErrModelMismatch = errors.New("controller: active model does not match program state")

// Controller is the input-driven state machine over the active model
type Controller struct {
	model model.Model

	modelUpdated        bool
	nextState           state.ProgramState
	hasNextState        bool
	exitRequested       bool
	assetPackageUpdated bool
	resolutionUpdated   bool
}

// New creates a controller driving m
func New(m model.Model) *Controller {
	return &Controller{model: m}
}

// Model returns the active model
func (c *Controller) Model() model.Model {
	return c.model
}

// SetModel swaps the active model after a transition, clears the pending
// transition and marks the new model for rendering.
func (c *Controller) SetModel(m model.Model) {
	c.model = m
	c.hasNextState = false
	c.modelUpdated = true
}

// ModelUpdated reports whether the active model changed since the last render
func (c *Controller) ModelUpdated() bool {
	return c.modelUpdated
}

// ResetRenderFlag is called by the program loop after rendering
func (c *Controller) ResetRenderFlag() {
	c.modelUpdated = false
}

// NextState returns the requested top-level transition, if any
func (c *Controller) NextState() (state.ProgramState, bool) {
	return c.nextState, c.hasNextState
}

// ExitRequested reports whether the player pressed EXIT
func (c *Controller) ExitRequested() bool {
	return c.exitRequested
}

// AssetPackageUpdated reports whether an accepted theme change needs new assets
func (c *Controller) AssetPackageUpdated() bool {
	return c.assetPackageUpdated
}

// ResolutionUpdated reports whether an accepted resolution change needs a window resize
func (c *Controller) ResolutionUpdated() bool {
	return c.resolutionUpdated
}

// ResetSettingsFlags is called by the program loop after applying theme and resolution changes
func (c *Controller) ResetSettingsFlags() {
	c.assetPackageUpdated = false
	c.resolutionUpdated = false
}

func (c *Controller) requestState(s state.ProgramState) {
	c.nextState = s
	c.hasNextState = true
}

// HandleInput processes one frame of input in the given mode.
// Highlighting runs every frame; clicks are resolved afterwards.
func (c *Controller) HandleInput(in system.UserInput, mode state.ProgramState) error {
	switch mode {
	case state.StateMenu:
		menu, ok := c.model.(*model.Menu)
		if !ok {
			return fmt.Errorf("%w: %s", ErrModelMismatch, mode)
		}
		c.updateHighlight(in)
		if in.Clicked {
			return c.resolveMenuClick(menu)
		}
	case state.StateGame:
		game, ok := c.model.(*model.Game)
		if !ok {
			return fmt.Errorf("%w: %s", ErrModelMismatch, mode)
		}
		// No hover feedback under a notification overlay
		if game.Notification() == entity.NotificationNone {
			c.updateHighlight(in)
		}
		if in.Clicked {
			c.resolveGameboardClick(game, in)
		}
	default:
		return fmt.Errorf("controller: unknown program state %d", int(mode))
	}
	return nil
}

func (c *Controller) updateHighlight(in system.UserInput) {
	if hl := c.model.HighlightedButton(); hl != nil {
		if !hl.Contains(in.Position) {
			c.model.ClearHighlight()
			c.modelUpdated = true
		}
		return
	}

	for _, b := range c.model.ActiveButtons() {
		if b.Contains(in.Position) {
			c.model.SetHighlight(b.Flag)
			c.modelUpdated = true
			return
		}
	}
}

func (c *Controller) resolveMenuClick(m *model.Menu) error {
	switch m.CurrentMenu() {
	case state.MenuCredits:
		c.modelUpdated = true
		m.UpdateMenuState(state.MenuMain)
		return nil
	case state.MenuTutorial:
		c.modelUpdated = true
		if m.TutorialStep() {
			m.UpdateMenuState(state.MenuMain)
		}
		return nil
	}

	hl := m.HighlightedButton()
	if hl == nil {
		return nil
	}
	c.modelUpdated = true

	switch hl.Flag {
	case entity.ButtonPlay:
		c.requestState(state.StateGame)
	case entity.ButtonOptions:
		m.ResetDisplayedSettings()
		m.UpdateMenuState(state.MenuOptions)
	case entity.ButtonExit:
		c.exitRequested = true
	case entity.ButtonTutorial:
		m.UpdateMenuState(state.MenuTutorial)
	case entity.ButtonCredits:
		m.UpdateMenuState(state.MenuCredits)
	case entity.ButtonDifficultyToggle:
		m.CycleDifficultyDisplayed()
	case entity.ButtonResolutionToggle:
		m.CycleResolutionDisplayed()
	case entity.ButtonThemeToggle:
		m.CycleThemeDisplayed()
	case entity.ButtonBackToMain:
		m.UpdateMenuState(state.MenuMain)
	case entity.ButtonAcceptSettings:
		c.acceptSettings(m)
	default:
		return fmt.Errorf("controller: no menu action for button %s", hl.Flag)
	}
	return nil
}

// acceptSettings commits the staged settings. Difficulty is not flagged:
// it only matters when the next game is created.
func (c *Controller) acceptSettings(m *model.Menu) {
	applied, staged := m.Settings(), m.DisplayedSettings()
	if applied.Theme != staged.Theme {
		c.assetPackageUpdated = true
	}
	if applied.Resolution != staged.Resolution {
		c.resolutionUpdated = true
	}
	m.ImplementDisplayedSettings()
	m.UpdateMenuState(state.MenuMain)
}

func (c *Controller) resolveGameboardClick(g *model.Game, in system.UserInput) {
	if n := g.Notification(); n != entity.NotificationNone {
		if n == entity.NotificationVictory {
			c.requestState(state.StateMenu)
			return
		}
		g.ClearNotification()
		c.modelUpdated = true
		return
	}

	if hl := g.HighlightedButton(); hl != nil {
		c.modelUpdated = true
		if hl.Flag == entity.ButtonBackToMain {
			c.requestState(state.StateMenu)
		}
		if hl.Flag == entity.ButtonResetBoard {
			g.ResetBoard()
		}
		return
	}

	c.handleTowerClick(g, ClickedTower(in.Position.X))
}

func (c *Controller) handleTowerClick(g *model.Game, clicked int) {
	if !g.HasSelection() {
		if g.Board().Height(clicked) > 0 {
			g.SetSelectedTower(clicked)
			c.modelUpdated = true
		}
		return
	}

	c.modelUpdated = true
	selected := g.SelectedTower()
	if selected == clicked {
		g.SetSelectedTower(entity.NoTower)
		return
	}

	if !g.CheckMoveLegal(selected, clicked) {
		// The selection survives the notification
		g.SetNotification(entity.NotificationIllegalMove)
		return
	}

	g.MoveDisc(selected, clicked)
	g.SetSelectedTower(entity.NoTower)
	if g.IsComplete() {
		g.SetNotification(entity.NotificationVictory)
	}
}

// ClickedTower maps a virtual x coordinate to a tower index by thirds of the board
func ClickedTower(x int) int {
	switch {
	case x < leftTowerMaxX:
		return 0
	case x > rightTowerMinX:
		return 2
	default:
		return 1
	}
}
