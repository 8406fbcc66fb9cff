package model

import (
	"github.com/younwookim/hanoi/internal/application/state"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// TutorialSlides is the number of pages in the tutorial
const TutorialSlides = entity.TutorialSlides

var (
	mainMenuButtons = []entity.ButtonFlag{
		entity.ButtonPlay,
		entity.ButtonOptions,
		entity.ButtonExit,
		entity.ButtonTutorial,
		entity.ButtonCredits,
	}
	optionsMenuButtons = []entity.ButtonFlag{
		entity.ButtonDifficultyToggle,
		entity.ButtonResolutionToggle,
		entity.ButtonThemeToggle,
		entity.ButtonAcceptSettings,
		entity.ButtonBackToMain,
	}
)

// Menu is the long-lived model behind every menu screen.
//
// settings holds the applied configuration. displayed holds the staged copy
// edited on the options screen; it only reaches settings through
// ImplementDisplayedSettings.
type Menu struct {
	highlight

	current   state.MenuState
	buttons   []entity.Button
	settings  entity.Settings
	displayed entity.Settings
	slide     int
}

var _ Model = (*Menu)(nil)

// NewMenu creates a menu on the main screen with the given applied settings
func NewMenu(settings entity.Settings) *Menu {
	m := &Menu{
		settings:  settings,
		displayed: settings,
	}
	m.UpdateMenuState(state.MenuMain)
	return m
}

// CurrentMenu returns the screen being shown
func (m *Menu) CurrentMenu() state.MenuState {
	return m.current
}

// ActiveButtons returns the buttons of the current screen
func (m *Menu) ActiveButtons() []entity.Button {
	return m.buttons
}

// UpdateMenuState switches screens and rebuilds the active buttons.
// The tutorial and credits screens have no buttons.
func (m *Menu) UpdateMenuState(s state.MenuState) {
	m.current = s

	var flags []entity.ButtonFlag
	switch s {
	case state.MenuMain:
		flags = mainMenuButtons
	case state.MenuOptions:
		flags = optionsMenuButtons
	}
	m.buttons = entity.NewButtons(flags...)
}

// TutorialSlide returns the index of the tutorial page being shown
func (m *Menu) TutorialSlide() int {
	return m.slide
}

// TutorialStep advances the tutorial. It returns true and rewinds to the
// first page after the last page.
func (m *Menu) TutorialStep() bool {
	m.slide++
	if m.slide == TutorialSlides {
		m.slide = 0
		return true
	}
	return false
}

// Settings returns the applied settings
func (m *Menu) Settings() entity.Settings {
	return m.settings
}

// DisplayedSettings returns the staged settings shown on the options screen
func (m *Menu) DisplayedSettings() entity.Settings {
	return m.displayed
}

func (m *Menu) CycleThemeDisplayed() {
	m.displayed.Theme = entity.Next(entity.Themes, m.displayed.Theme)
}

func (m *Menu) CycleResolutionDisplayed() {
	m.displayed.Resolution = entity.Next(entity.Resolutions, m.displayed.Resolution)
}

func (m *Menu) CycleDifficultyDisplayed() {
	m.displayed.Difficulty = entity.Next(entity.Difficulties, m.displayed.Difficulty)
}

// ResetDisplayedSettings discards staged edits
func (m *Menu) ResetDisplayedSettings() {
	m.displayed = m.settings
}

// ImplementDisplayedSettings commits the staged settings
func (m *Menu) ImplementDisplayedSettings() {
	m.settings = m.displayed
}
