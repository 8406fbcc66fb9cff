// Package render draws the menu and game models onto the 960x640 virtual screen.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hanoi/internal/application/model"
	"github.com/younwookim/hanoi/internal/application/state"
	"github.com/younwookim/hanoi/internal/domain/entity"
	"github.com/younwookim/hanoi/internal/infrastructure/assets"
)

// Board geometry in virtual pixels
const (
	BaseDiscHalfWidth  = 43  // half width of the smallest disc
	DiscWidthIncrement = 21  // extra half width per disc size
	DiscHeight         = 69  // vertical step between stacked discs
	BaseY              = 516 // top of the lowest disc
)

// TowerCenters are the x coordinates of the three towers
var TowerCenters = [entity.TowerCount]int{192, 480, 768}

// Options screen indicator positions
var (
	DifficultyIndicatorPos = image.Pt(550, 160)
	ResolutionIndicatorPos = image.Pt(550, 300)
	ThemeIndicatorPos      = image.Pt(550, 420)
)

var notificationTops = map[entity.Notification]int{
	entity.NotificationIllegalMove: 20,
	entity.NotificationVictory:     160,
}

// Renderer draws models with the images of one theme
type Renderer struct {
	assets *assets.Bundle
}

// New creates a renderer for an asset bundle
func New(b *assets.Bundle) *Renderer {
	return &Renderer{assets: b}
}

// Theme returns the theme of the loaded assets
func (r *Renderer) Theme() entity.Theme {
	return r.assets.Theme
}

// RenderMenu draws the current menu screen
func (r *Renderer) RenderMenu(m *model.Menu, dst *ebiten.Image) {
	dst.Clear()

	switch m.CurrentMenu() {
	case state.MenuMain:
		drawAt(dst, r.assets.MainMenu, image.Point{})
	case state.MenuOptions:
		drawAt(dst, r.assets.Options, image.Point{})
	case state.MenuCredits:
		drawAt(dst, r.assets.Credits, image.Point{})
	}

	r.drawButtons(m, dst)

	switch m.CurrentMenu() {
	case state.MenuOptions:
		shown := m.DisplayedSettings()
		drawAt(dst, r.assets.Difficulty[shown.Difficulty], DifficultyIndicatorPos)
		drawAt(dst, r.assets.Resolution[shown.Resolution], ResolutionIndicatorPos)
		drawAt(dst, r.assets.Style[shown.Theme], ThemeIndicatorPos)
	case state.MenuTutorial:
		if slide := m.TutorialSlide(); slide < len(r.assets.Tutorial) {
			drawAt(dst, r.assets.Tutorial[slide], image.Point{})
		}
	}
}

// RenderGame draws the board, its buttons and any notification
func (r *Renderer) RenderGame(g *model.Game, dst *ebiten.Image) {
	dst.Clear()
	drawAt(dst, r.assets.GameBoard, image.Point{})

	towers := g.Towers()
	for t, discs := range towers {
		for h, size := range discs {
			selected := g.SelectedTower() == t && h == len(discs)-1
			r.drawDisc(dst, t, size, h, selected)
		}
	}

	r.drawButtons(g, dst)

	var img *ebiten.Image
	switch g.Notification() {
	case entity.NotificationIllegalMove:
		img = r.assets.IllegalMove
	case entity.NotificationVictory:
		img = r.assets.Victory
	default:
		return
	}
	if img != nil {
		drawAt(dst, img, NotificationPos(g.Notification(), img.Bounds().Dx()))
	}
}

func (r *Renderer) drawButtons(m model.Model, dst *ebiten.Image) {
	for _, b := range m.ActiveButtons() {
		img := r.assets.Buttons[b.Flag]
		if model.IsHighlighted(m, b.Flag) {
			img = r.assets.ButtonsSelected[b.Flag]
		}
		drawAt(dst, img, b.Rect.Min)
	}
}

func (r *Renderer) drawDisc(dst *ebiten.Image, tower, size, height int, selected bool) {
	images := r.assets.Discs
	if selected {
		images = r.assets.DiscsSelected
	}
	if size < 0 || size >= len(images) {
		return
	}
	drawAt(dst, images[size], DiscPos(tower, size, height))
}

// DiscPos returns the top-left corner of a disc of size at height on tower
func DiscPos(tower, size, height int) image.Point {
	return image.Pt(
		TowerCenters[tower]-BaseDiscHalfWidth-DiscWidthIncrement*size,
		BaseY-DiscHeight*height,
	)
}

// NotificationPos returns the top-left corner of a notification image of the
// given width, centred horizontally on the virtual screen
func NotificationPos(n entity.Notification, width int) image.Point {
	return image.Pt(entity.VirtualWidth/2-width/2, notificationTops[n])
}

func drawAt(dst, img *ebiten.Image, p image.Point) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	dst.DrawImage(img, op)
}
