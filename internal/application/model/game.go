package model

import "github.com/younwookim/hanoi/internal/domain/entity"

var gameButtons = []entity.ButtonFlag{entity.ButtonResetBoard, entity.ButtonBackToMain}

// Game is one play session on the tower board
type Game struct {
	highlight

	board        *entity.Board
	buttons      []entity.Button
	selected     int
	notification entity.Notification
	moves        int
}

var _ Model = (*Game)(nil)

// NewGame creates a session with discs discs on the first tower
func NewGame(discs int) *Game {
	return &Game{
		board:    entity.NewBoard(discs),
		buttons:  entity.NewButtons(gameButtons...),
		selected: entity.NoTower,
	}
}

// ActiveButtons returns the fixed game-board controls
func (g *Game) ActiveButtons() []entity.Button {
	return g.buttons
}

// Board exposes the tower arrangement for reading
func (g *Game) Board() *entity.Board {
	return g.board
}

// Towers returns copies of the three towers
func (g *Game) Towers() [entity.TowerCount][]int {
	return g.board.Towers()
}

// CheckMoveLegal reports whether the top disc of from may go onto to
func (g *Game) CheckMoveLegal(from, to int) bool {
	return g.board.CanMove(from, to)
}

// MoveDisc moves one disc. The move must already be checked with CheckMoveLegal.
func (g *Game) MoveDisc(from, to int) {
	g.board.MoveDisc(from, to)
	g.moves++
}

// IsComplete reports whether the puzzle is solved
func (g *Game) IsComplete() bool {
	return g.board.IsComplete()
}

// ResetBoard clears the selection and restacks the discs on the first tower
func (g *Game) ResetBoard() {
	g.selected = entity.NoTower
	g.board.Reset()
	g.moves = 0
}

// SelectedTower returns the tower awaiting a second click, or entity.NoTower
func (g *Game) SelectedTower() int {
	return g.selected
}

// HasSelection reports whether a tower is selected
func (g *Game) HasSelection() bool {
	return g.selected != entity.NoTower
}

// SetSelectedTower sets the selection without validation
func (g *Game) SetSelectedTower(tower int) {
	g.selected = tower
}

// Notification returns the active overlay
func (g *Game) Notification() entity.Notification {
	return g.notification
}

func (g *Game) SetNotification(n entity.Notification) {
	g.notification = n
}

func (g *Game) ClearNotification() {
	g.notification = entity.NotificationNone
}

// Moves returns the number of discs moved since the board was last reset
func (g *Game) Moves() int {
	return g.moves
}
