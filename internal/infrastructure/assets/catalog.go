// Package assets locates, checks and loads the game's PNG images.
//
// Layout of the asset directory:
//
//	default/ red/ blue/   one folder per theme with the three backgrounds
//	*.png                 images shared by every theme
package assets

import (
	"fmt"
	"slices"

	"github.com/younwookim/hanoi/internal/domain/entity"
)

// Theme background files. Every theme folder holds exactly these three.
const (
	MenuBackgroundFile    = "Menu_BG.png"
	OptionsBackgroundFile = "Options_BG.png"
	GameBackgroundFile    = "Game_BG.png"
)

// Shared single images
const (
	CreditsFile     = "Credit_Page.png"
	IllegalMoveFile = "Big_X.png"
	VictoryFile     = "Victory.png"
)

// MaxDiscs is the number of disc sizes with artwork
const MaxDiscs = 5

var themeDirs = map[entity.Theme]string{
	entity.ThemeStandard: "default",
	entity.ThemeRed:      "red",
	entity.ThemeBlue:     "blue",
}

var buttonPrefixes = map[entity.ButtonFlag]string{
	entity.ButtonPlay:             "Play",
	entity.ButtonOptions:          "Options",
	entity.ButtonExit:             "Exit",
	entity.ButtonTutorial:         "Tutorial",
	entity.ButtonCredits:          "Credits",
	entity.ButtonDifficultyToggle: "Difficulty",
	entity.ButtonResolutionToggle: "Resolution",
	entity.ButtonThemeToggle:      "Style",
	entity.ButtonBackToMain:       "Back",
	entity.ButtonAcceptSettings:   "Accept",
	entity.ButtonResetBoard:       "Refresh",
}

// ThemeDir returns the folder holding the backgrounds of theme
func ThemeDir(theme entity.Theme) string {
	dir, ok := themeDirs[theme]
	if !ok {
		return themeDirs[entity.ThemeStandard]
	}
	return dir
}

// ThemeDirs returns the theme folders in theme order
func ThemeDirs() []string {
	dirs := make([]string, 0, len(entity.Themes))
	for _, t := range entity.Themes {
		dirs = append(dirs, themeDirs[t])
	}
	return dirs
}

// ButtonFile returns the image of a button in its base or selected variant
func ButtonFile(flag entity.ButtonFlag, selected bool) string {
	variant := "Base"
	if selected {
		variant = "Selected"
	}
	return fmt.Sprintf("%s_Button_%s.png", buttonPrefixes[flag], variant)
}

// DiscFile returns the image of a disc size, highlighted or not
func DiscFile(size int, highlighted bool) string {
	variant := "b"
	if highlighted {
		variant = "s"
	}
	return fmt.Sprintf("Plate_%d_%s.png", size, variant)
}

// DifficultyFile returns the indicator for entity.Difficulties[index]
func DifficultyFile(index int) string { return fmt.Sprintf("Difficulty_Display_%d.png", index+1) }

// ResolutionFile returns the indicator for entity.Resolutions[index]
func ResolutionFile(index int) string { return fmt.Sprintf("Resolution_Display_%d.png", index+1) }

// StyleFile returns the indicator for entity.Themes[index]
func StyleFile(index int) string { return fmt.Sprintf("Style_Display_%d.png", index+1) }

// TutorialFile returns the image of a zero-based tutorial slide
func TutorialFile(slide int) string { return fmt.Sprintf("Tutorial_%d.png", slide+1) }

// TutorialStandinFile returns the placeholder of a zero-based tutorial slide
func TutorialStandinFile(slide int) string { return fmt.Sprintf("Tutorial_Standin_%d.png", slide+1) }

// CommonFiles lists every image required at the root of the asset directory
func CommonFiles() []string {
	files := []string{CreditsFile, IllegalMoveFile, VictoryFile}
	for flag := range buttonPrefixes {
		files = append(files, ButtonFile(flag, false), ButtonFile(flag, true))
	}
	for size := 0; size < MaxDiscs; size++ {
		files = append(files, DiscFile(size, false), DiscFile(size, true))
	}
	for i := range entity.Difficulties {
		files = append(files, DifficultyFile(i))
	}
	for i := range entity.Resolutions {
		files = append(files, ResolutionFile(i))
	}
	for i := range entity.Themes {
		files = append(files, StyleFile(i))
	}
	for slide := 0; slide < entity.TutorialSlides; slide++ {
		files = append(files, TutorialFile(slide), TutorialStandinFile(slide))
	}
	slices.Sort(files)
	return files
}
