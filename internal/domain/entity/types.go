package entity

import "fmt"

// Virtual screen dimensions. All layout and hit-testing happens in this space.
const (
	VirtualWidth  = 960
	VirtualHeight = 640
)

// TutorialSlides is the number of tutorial pages
const TutorialSlides = 8

// Theme is the visual style of the backgrounds
type Theme int

const (
	ThemeStandard Theme = iota
	ThemeRed
	ThemeBlue
)

// String returns the string representation of the theme
func (t Theme) String() string {
	switch t {
	case ThemeStandard:
		return "standard"
	case ThemeRed:
		return "red"
	case ThemeBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// ParseTheme converts a theme name back into a Theme
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if t.String() == s {
			return t, nil
		}
	}
	return ThemeStandard, fmt.Errorf("unknown theme %q", s)
}

// Resolution is a window size in pixels
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses "WIDTHxHEIGHT" and checks it against Resolutions
func ParseResolution(s string) (Resolution, error) {
	var r Resolution
	if _, err := fmt.Sscanf(s, "%dx%d", &r.Width, &r.Height); err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution %q: %w", s, err)
	}
	if indexOf(Resolutions, r) < 0 {
		return Resolution{}, fmt.Errorf("unsupported resolution %s", r)
	}
	return r, nil
}

// Option lists, in cycling order.
var (
	Themes      = []Theme{ThemeStandard, ThemeRed, ThemeBlue}
	Resolutions = []Resolution{
		{720, 480},
		{864, 576},
		{960, 640},
		{1080, 720},
		{1296, 864},
	}
	Difficulties = []int{3, 4, 5}
)

// Settings is one full set of player options. Difficulty is the disc count.
type Settings struct {
	Theme      Theme
	Resolution Resolution
	Difficulty int
}

// DefaultSettings returns the settings a fresh program starts with
func DefaultSettings() Settings {
	return Settings{
		Theme:      ThemeStandard,
		Resolution: Resolution{VirtualWidth, VirtualHeight},
		Difficulty: 3,
	}
}

// Validate reports whether every field is one of the supported options
func (s Settings) Validate() error {
	if indexOf(Themes, s.Theme) < 0 {
		return fmt.Errorf("unsupported theme %d", int(s.Theme))
	}
	if indexOf(Resolutions, s.Resolution) < 0 {
		return fmt.Errorf("unsupported resolution %s", s.Resolution)
	}
	if indexOf(Difficulties, s.Difficulty) < 0 {
		return fmt.Errorf("unsupported difficulty %d", s.Difficulty)
	}
	return nil
}

// Next returns the option after current, wrapping after the last one.
// A value missing from options restarts at the first option.
func Next[T comparable](options []T, current T) T {
	return options[(indexOf(options, current)+1)%len(options)]
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}

// Notification is a sticky overlay shown on the game board
type Notification int

const (
	NotificationNone Notification = iota
	NotificationIllegalMove
	NotificationVictory
)

// String returns the string representation of the notification
func (n Notification) String() string {
	switch n {
	case NotificationNone:
		return "None"
	case NotificationIllegalMove:
		return "IllegalMove"
	case NotificationVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}
