package controller

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hanoi/internal/application/model"
	"github.com/younwookim/hanoi/internal/application/state"
	"github.com/younwookim/hanoi/internal/application/system"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// emptySpot is a point no button covers on any screen
var emptySpot = image.Pt(700, 120)

func centerOf(flag entity.ButtonFlag) image.Point {
	r := entity.NewButton(flag).Rect
	return r.Min.Add(r.Size().Div(2))
}

func hover(t *testing.T, c *Controller, p image.Point, mode state.ProgramState) {
	t.Helper()
	require.NoError(t, c.HandleInput(system.UserInput{Position: p}, mode))
}

func click(t *testing.T, c *Controller, p image.Point, mode state.ProgramState) {
	t.Helper()
	require.NoError(t, c.HandleInput(system.UserInput{Position: p, Clicked: true}, mode))
}

func clickButton(t *testing.T, c *Controller, flag entity.ButtonFlag, mode state.ProgramState) {
	t.Helper()
	click(t, c, centerOf(flag), mode)
}

func newMenuController() (*Controller, *model.Menu) {
	m := model.NewMenu(entity.DefaultSettings())
	return New(m), m
}

func newGameController(discs int) (*Controller, *model.Game) {
	g := model.NewGame(discs)
	return New(g), g
}

func TestNew_InitialFlags(t *testing.T) {
	c, m := newMenuController()

	assert.Same(t, m, c.Model())
	assert.False(t, c.ModelUpdated())
	_, pending := c.NextState()
	assert.False(t, pending)
	assert.False(t, c.ExitRequested())
	assert.False(t, c.AssetPackageUpdated())
	assert.False(t, c.ResolutionUpdated())
}

func TestSetModel(t *testing.T) {
	c, _ := newMenuController()
	clickButton(t, c, entity.ButtonPlay, state.StateMenu)
	c.ResetRenderFlag()

	g := model.NewGame(3)
	c.SetModel(g)

	assert.Same(t, g, c.Model())
	assert.True(t, c.ModelUpdated())
	_, pending := c.NextState()
	assert.False(t, pending)
}

func TestResetFlags(t *testing.T) {
	c, m := newMenuController()
	m.CycleThemeDisplayed()
	m.CycleResolutionDisplayed()
	m.UpdateMenuState(state.MenuOptions)
	clickButton(t, c, entity.ButtonAcceptSettings, state.StateMenu)
	require.True(t, c.AssetPackageUpdated())
	require.True(t, c.ResolutionUpdated())

	c.ResetSettingsFlags()
	assert.False(t, c.AssetPackageUpdated())
	assert.False(t, c.ResolutionUpdated())

	c.ResetRenderFlag()
	assert.False(t, c.ModelUpdated())
}

func TestHandleInput_ModelMismatch(t *testing.T) {
	c, _ := newMenuController()
	err := c.HandleInput(system.UserInput{}, state.StateGame)
	assert.ErrorIs(t, err, ErrModelMismatch)

	c, _ = newGameController(3)
	err = c.HandleInput(system.UserInput{}, state.StateMenu)
	assert.ErrorIs(t, err, ErrModelMismatch)
}

func TestHandleInput_UnknownState(t *testing.T) {
	c, _ := newMenuController()
	assert.Error(t, c.HandleInput(system.UserInput{}, state.ProgramState(9)))
}

func TestHighlight_HoverAndLeave(t *testing.T) {
	c, m := newMenuController()

	hover(t, c, centerOf(entity.ButtonPlay), state.StateMenu)
	assert.True(t, model.IsHighlighted(m, entity.ButtonPlay))
	assert.True(t, c.ModelUpdated())

	c.ResetRenderFlag()
	hover(t, c, centerOf(entity.ButtonPlay).Add(image.Pt(10, 0)), state.StateMenu)
	assert.True(t, model.IsHighlighted(m, entity.ButtonPlay))
	assert.False(t, c.ModelUpdated(), "staying on the button changes nothing")

	hover(t, c, emptySpot, state.StateMenu)
	assert.Nil(t, m.HighlightedButton())
	assert.True(t, c.ModelUpdated())
}

func TestHighlight_MovingBetweenButtonsTakesTwoFrames(t *testing.T) {
	c, m := newMenuController()

	hover(t, c, centerOf(entity.ButtonPlay), state.StateMenu)
	hover(t, c, centerOf(entity.ButtonExit), state.StateMenu)
	assert.Nil(t, m.HighlightedButton(), "leaving clears first")

	hover(t, c, centerOf(entity.ButtonExit), state.StateMenu)
	assert.True(t, model.IsHighlighted(m, entity.ButtonExit))
}

func TestHighlight_NothingUnderCursor(t *testing.T) {
	c, m := newMenuController()

	hover(t, c, emptySpot, state.StateMenu)
	assert.Nil(t, m.HighlightedButton())
	assert.False(t, c.ModelUpdated())
}

func TestMenuClick_Play(t *testing.T) {
	c, _ := newMenuController()

	clickButton(t, c, entity.ButtonPlay, state.StateMenu)

	next, ok := c.NextState()
	require.True(t, ok)
	assert.Equal(t, state.StateGame, next)
	assert.True(t, c.ModelUpdated())
}

func TestMenuClick_OptionsStagesAppliedSettings(t *testing.T) {
	c, m := newMenuController()
	m.CycleDifficultyDisplayed() // leftover unaccepted edit

	clickButton(t, c, entity.ButtonOptions, state.StateMenu)

	assert.Equal(t, state.MenuOptions, m.CurrentMenu())
	assert.Equal(t, m.Settings(), m.DisplayedSettings())
}

func TestMenuClick_Exit(t *testing.T) {
	c, _ := newMenuController()

	clickButton(t, c, entity.ButtonExit, state.StateMenu)

	assert.True(t, c.ExitRequested())
}

func TestMenuClick_Credits(t *testing.T) {
	c, m := newMenuController()

	clickButton(t, c, entity.ButtonCredits, state.StateMenu)
	require.Equal(t, state.MenuCredits, m.CurrentMenu())
	assert.Empty(t, m.ActiveButtons())

	c.ResetRenderFlag()
	click(t, c, emptySpot, state.StateMenu)
	assert.Equal(t, state.MenuMain, m.CurrentMenu())
	assert.True(t, c.ModelUpdated())
}

func TestMenuClick_CreditsIgnoresHighlight(t *testing.T) {
	c, m := newMenuController()
	clickButton(t, c, entity.ButtonCredits, state.StateMenu)

	// CREDITS is still highlighted from the click that opened the screen
	click(t, c, centerOf(entity.ButtonCredits), state.StateMenu)

	assert.Equal(t, state.MenuMain, m.CurrentMenu())
}

func TestMenuClick_TutorialWalkthrough(t *testing.T) {
	c, m := newMenuController()

	clickButton(t, c, entity.ButtonTutorial, state.StateMenu)
	require.Equal(t, state.MenuTutorial, m.CurrentMenu())

	for i := 1; i < model.TutorialSlides; i++ {
		click(t, c, emptySpot, state.StateMenu)
		assert.Equal(t, state.MenuTutorial, m.CurrentMenu())
		assert.Equal(t, i, m.TutorialSlide())
	}

	click(t, c, emptySpot, state.StateMenu)
	assert.Equal(t, state.MenuMain, m.CurrentMenu())
	assert.Equal(t, 0, m.TutorialSlide())
}

func TestMenuClick_Toggles(t *testing.T) {
	c, m := newMenuController()
	clickButton(t, c, entity.ButtonOptions, state.StateMenu)
	hover(t, c, emptySpot, state.StateMenu)

	clickButton(t, c, entity.ButtonDifficultyToggle, state.StateMenu)
	assert.Equal(t, 4, m.DisplayedSettings().Difficulty)
	hover(t, c, emptySpot, state.StateMenu)

	clickButton(t, c, entity.ButtonResolutionToggle, state.StateMenu)
	assert.Equal(t, entity.Resolution{Width: 1080, Height: 720}, m.DisplayedSettings().Resolution)
	hover(t, c, emptySpot, state.StateMenu)

	clickButton(t, c, entity.ButtonThemeToggle, state.StateMenu)
	assert.Equal(t, entity.ThemeRed, m.DisplayedSettings().Theme)

	assert.Equal(t, entity.DefaultSettings(), m.Settings(), "toggles only touch staged settings")
}

func TestMenuClick_BackDiscardsStagedEdits(t *testing.T) {
	c, m := newMenuController()
	clickButton(t, c, entity.ButtonOptions, state.StateMenu)
	hover(t, c, emptySpot, state.StateMenu)
	clickButton(t, c, entity.ButtonThemeToggle, state.StateMenu)
	hover(t, c, emptySpot, state.StateMenu)

	clickButton(t, c, entity.ButtonBackToMain, state.StateMenu)

	assert.Equal(t, state.MenuMain, m.CurrentMenu())
	assert.Equal(t, entity.ThemeStandard, m.Settings().Theme)
	assert.False(t, c.AssetPackageUpdated())
}

func TestMenuClick_AcceptSettings(t *testing.T) {
	tests := []struct {
		name           string
		stage          func(*model.Menu)
		wantAssets     bool
		wantResolution bool
	}{
		{"no change", func(*model.Menu) {}, false, false},
		{"theme", (*model.Menu).CycleThemeDisplayed, true, false},
		{"resolution", (*model.Menu).CycleResolutionDisplayed, false, true},
		{"difficulty is never flagged", (*model.Menu).CycleDifficultyDisplayed, false, false},
		{"theme and resolution", func(m *model.Menu) {
			m.CycleThemeDisplayed()
			m.CycleResolutionDisplayed()
		}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newMenuController()
			m.UpdateMenuState(state.MenuOptions)
			tt.stage(m)
			staged := m.DisplayedSettings()

			clickButton(t, c, entity.ButtonAcceptSettings, state.StateMenu)

			assert.Equal(t, tt.wantAssets, c.AssetPackageUpdated())
			assert.Equal(t, tt.wantResolution, c.ResolutionUpdated())
			assert.Equal(t, staged, m.Settings())
			assert.Equal(t, state.MenuMain, m.CurrentMenu())
		})
	}
}

func TestMenuClick_EmptySpaceDoesNothing(t *testing.T) {
	c, m := newMenuController()

	click(t, c, emptySpot, state.StateMenu)

	assert.Equal(t, state.MenuMain, m.CurrentMenu())
	assert.False(t, c.ModelUpdated())
	_, pending := c.NextState()
	assert.False(t, pending)
}

func TestClickedTower(t *testing.T) {
	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{319, 0},
		{320, 1},
		{480, 1},
		{640, 1},
		{641, 2},
		{959, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClickedTower(tt.x), "x=%d", tt.x)
	}
}

func TestGameClick_SelectAndMove_ScenarioE(t *testing.T) {
	c, g := newGameController(3)

	click(t, c, image.Pt(100, 100), state.StateGame)
	assert.Equal(t, 0, g.SelectedTower())
	assert.True(t, c.ModelUpdated())

	click(t, c, image.Pt(700, 100), state.StateGame)
	assert.Equal(t, entity.NoTower, g.SelectedTower())
	assert.Equal(t, [entity.TowerCount][]int{{2, 1}, {}, {0}}, g.Towers())
	assert.Equal(t, entity.NotificationNone, g.Notification())
}

func TestGameClick_EmptyTowerWithoutSelection(t *testing.T) {
	c, g := newGameController(3)

	click(t, c, image.Pt(480, 300), state.StateGame)

	assert.False(t, g.HasSelection())
	assert.False(t, c.ModelUpdated())
}

func TestGameClick_SameTowerDeselects(t *testing.T) {
	c, g := newGameController(3)

	click(t, c, image.Pt(100, 300), state.StateGame)
	c.ResetRenderFlag()
	click(t, c, image.Pt(200, 400), state.StateGame)

	assert.False(t, g.HasSelection())
	assert.True(t, c.ModelUpdated())
	assert.Equal(t, [entity.TowerCount][]int{{2, 1, 0}, {}, {}}, g.Towers())
}

func TestGameClick_IllegalMoveKeepsSelection(t *testing.T) {
	c, g := newGameController(3)
	g.MoveDisc(0, 1) // disc 0 on tower 1

	click(t, c, image.Pt(100, 300), state.StateGame) // select tower 0 (top disc 1)
	click(t, c, image.Pt(480, 300), state.StateGame) // onto disc 0

	assert.Equal(t, entity.NotificationIllegalMove, g.Notification())
	assert.Equal(t, 0, g.SelectedTower())
	assert.Equal(t, [entity.TowerCount][]int{{2, 1}, {0}, {}}, g.Towers())

	// Dismissing the notice keeps the selection
	c.ResetRenderFlag()
	click(t, c, image.Pt(800, 300), state.StateGame)
	assert.Equal(t, entity.NotificationNone, g.Notification())
	assert.Equal(t, 0, g.SelectedTower())
	assert.True(t, c.ModelUpdated())
	assert.Equal(t, [entity.TowerCount][]int{{2, 1}, {0}, {}}, g.Towers(), "dismiss click is not a move")

	// The next click completes the pending move
	click(t, c, image.Pt(800, 300), state.StateGame)
	assert.Equal(t, [entity.TowerCount][]int{{2}, {0}, {1}}, g.Towers())
	assert.False(t, g.HasSelection())
}

func TestGameClick_NotificationSuppressesHighlight(t *testing.T) {
	c, g := newGameController(3)
	g.SetNotification(entity.NotificationIllegalMove)

	hover(t, c, centerOf(entity.ButtonResetBoard), state.StateGame)

	assert.Nil(t, g.HighlightedButton())
	assert.False(t, c.ModelUpdated())
}

func TestGameClick_NotificationBlocksButtons(t *testing.T) {
	c, g := newGameController(3)
	g.MoveDisc(0, 2)
	g.SetHighlight(entity.ButtonResetBoard)
	g.SetNotification(entity.NotificationIllegalMove)

	clickButton(t, c, entity.ButtonResetBoard, state.StateGame)

	assert.Equal(t, entity.NotificationNone, g.Notification())
	assert.Equal(t, [entity.TowerCount][]int{{2, 1}, {}, {0}}, g.Towers(), "reset not triggered")
}

func TestGameClick_VictoryFlow(t *testing.T) {
	c, g := newGameController(3)
	moves := [][2]int{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}
	towerX := []int{100, 480, 800}

	for _, m := range moves {
		click(t, c, image.Pt(towerX[m[0]], 300), state.StateGame)
		click(t, c, image.Pt(towerX[m[1]], 300), state.StateGame)
	}

	require.True(t, g.IsComplete())
	assert.Equal(t, entity.NotificationVictory, g.Notification())
	assert.Equal(t, 7, g.Moves())
	_, pending := c.NextState()
	assert.False(t, pending)

	click(t, c, image.Pt(480, 300), state.StateGame)
	next, ok := c.NextState()
	require.True(t, ok)
	assert.Equal(t, state.StateMenu, next)
	assert.Equal(t, entity.NotificationVictory, g.Notification(), "victory is not cleared")
}

func TestGameClick_BackToMain(t *testing.T) {
	c, _ := newGameController(3)

	clickButton(t, c, entity.ButtonBackToMain, state.StateGame)

	next, ok := c.NextState()
	require.True(t, ok)
	assert.Equal(t, state.StateMenu, next)
	assert.True(t, c.ModelUpdated())
}

func TestGameClick_ResetBoard(t *testing.T) {
	c, g := newGameController(4)
	click(t, c, image.Pt(100, 300), state.StateGame)
	click(t, c, image.Pt(480, 300), state.StateGame)
	click(t, c, image.Pt(100, 300), state.StateGame)

	clickButton(t, c, entity.ButtonResetBoard, state.StateGame)

	assert.Equal(t, [entity.TowerCount][]int{{3, 2, 1, 0}, {}, {}}, g.Towers())
	assert.False(t, g.HasSelection())
	_, pending := c.NextState()
	assert.False(t, pending)
}

func TestGameClick_ButtonClickSkipsTowers(t *testing.T) {
	c, g := newGameController(3)

	// BACK_TO_MAIN sits over tower 0's column
	clickButton(t, c, entity.ButtonBackToMain, state.StateGame)

	assert.False(t, g.HasSelection())
}
