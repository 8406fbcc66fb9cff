// Package model holds the state the controller mutates: the menu system and
// a single game session.
package model

import "github.com/younwookim/hanoi/internal/domain/entity"

// Model is the capability shared by the menu and game models.
// The controller uses it for hover highlighting regardless of mode.
type Model interface {
	// HighlightedButton returns the hovered button, or nil.
	HighlightedButton() *entity.Button
	// ActiveButtons returns the clickable buttons of the current screen, in hit-test order.
	ActiveButtons() []entity.Button
	SetHighlight(flag entity.ButtonFlag)
	ClearHighlight()
}

// highlight implements the highlight half of Model for embedding
type highlight struct {
	button *entity.Button
}

func (h *highlight) HighlightedButton() *entity.Button {
	return h.button
}

func (h *highlight) SetHighlight(flag entity.ButtonFlag) {
	b := entity.NewButton(flag)
	h.button = &b
}

func (h *highlight) ClearHighlight() {
	h.button = nil
}

// IsHighlighted reports whether flag is the hovered button of m
func IsHighlighted(m Model, flag entity.ButtonFlag) bool {
	b := m.HighlightedButton()
	return b != nil && b.Flag == flag
}
