package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hanoi/internal/domain/entity"
)

// UserInput is one frame of normalized input.
// Position is in virtual screen space (960x640).
type UserInput struct {
	Position image.Point
	Clicked  bool
}

// InputSystem reads mouse input from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the cursor and left-click state and scales the cursor from a
// window of windowW x windowH pixels into virtual screen space.
func (s *InputSystem) GetInput(windowW, windowH int) UserInput {
	mx, my := ebiten.CursorPosition()
	return UserInput{
		Position: ToVirtual(image.Pt(mx, my), windowW, windowH),
		Clicked:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// ToVirtual scales a window position into virtual screen space.
// A non-positive window size leaves the position unscaled.
func ToVirtual(p image.Point, windowW, windowH int) image.Point {
	if windowW <= 0 || windowH <= 0 {
		return p
	}
	return image.Pt(
		p.X*entity.VirtualWidth/windowW,
		p.Y*entity.VirtualHeight/windowH,
	)
}
