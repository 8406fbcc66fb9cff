package state

// ProgramState is the top-level mode of the program
type ProgramState int

const (
	StateMenu ProgramState = iota
	StateGame
)

// String returns the string representation of the program state
func (s ProgramState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateGame:
		return "Game"
	default:
		return "Unknown"
	}
}

// MenuState is the screen shown while in StateMenu
type MenuState int

const (
	MenuMain MenuState = iota
	MenuOptions
	MenuTutorial
	MenuCredits
)

// String returns the string representation of the menu screen
func (s MenuState) String() string {
	switch s {
	case MenuMain:
		return "Main"
	case MenuOptions:
		return "Options"
	case MenuTutorial:
		return "Tutorial"
	case MenuCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}
