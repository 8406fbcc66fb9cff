package entity

import (
	"fmt"
	"image"
)

// ButtonFlag identifies an interactive control
type ButtonFlag int

const (
	// Main menu
	ButtonPlay ButtonFlag = iota
	ButtonOptions
	ButtonExit
	ButtonTutorial
	ButtonCredits

	// Options menu
	ButtonDifficultyToggle
	ButtonResolutionToggle
	ButtonThemeToggle
	ButtonBackToMain
	ButtonAcceptSettings

	// Game board
	ButtonResetBoard
)

var buttonNames = map[ButtonFlag]string{
	ButtonPlay:             "Play",
	ButtonOptions:          "Options",
	ButtonExit:             "Exit",
	ButtonTutorial:         "Tutorial",
	ButtonCredits:          "Credits",
	ButtonDifficultyToggle: "DifficultyToggle",
	ButtonResolutionToggle: "ResolutionToggle",
	ButtonThemeToggle:      "ThemeToggle",
	ButtonBackToMain:       "BackToMain",
	ButtonAcceptSettings:   "AcceptSettings",
	ButtonResetBoard:       "ResetBoard",
}

// String returns the string representation of the button flag
func (f ButtonFlag) String() string {
	if name, ok := buttonNames[f]; ok {
		return name
	}
	return "Unknown"
}

// Button sizes
var (
	StandardButtonSize = image.Pt(200, 80)
	SmallButtonSize    = image.Pt(75, 75)
)

// buttonCenters is the fixed layout in virtual screen space
var buttonCenters = map[ButtonFlag]image.Point{
	ButtonPlay:     {480, 300},
	ButtonOptions:  {480, 400},
	ButtonExit:     {480, 500},
	ButtonTutorial: {140, 570},
	ButtonCredits:  {820, 570},

	ButtonDifficultyToggle: {400, 220},
	ButtonResolutionToggle: {400, 340},
	ButtonThemeToggle:      {400, 460},
	ButtonAcceptSettings:   {480, 560},

	ButtonResetBoard: {900, 60},
	ButtonBackToMain: {60, 60},
}

// Button pairs a flag with its hit rectangle. Buttons are never moved or resized.
type Button struct {
	Flag ButtonFlag
	Rect image.Rectangle
}

// NewButton creates the button for flag at its predefined position.
// It panics for a flag without a layout entry.
func NewButton(flag ButtonFlag) Button {
	center, ok := buttonCenters[flag]
	if !ok {
		panic(fmt.Sprintf("entity: no predefined position for button %s", flag))
	}

	size := StandardButtonSize
	if flag == ButtonBackToMain || flag == ButtonResetBoard {
		size = SmallButtonSize
	}

	topLeft := center.Sub(size.Div(2))
	return Button{
		Flag: flag,
		Rect: image.Rectangle{Min: topLeft, Max: topLeft.Add(size)},
	}
}

// NewButtons creates buttons for flags, preserving order
func NewButtons(flags ...ButtonFlag) []Button {
	buttons := make([]Button, 0, len(flags))
	for _, f := range flags {
		buttons = append(buttons, NewButton(f))
	}
	return buttons
}

// Contains reports whether p lies inside the button's hit rectangle
func (b Button) Contains(p image.Point) bool {
	return p.In(b.Rect)
}
