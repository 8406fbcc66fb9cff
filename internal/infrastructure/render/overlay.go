package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// DrawDebugOverlay prints msg in the top-left corner of dst.
// Lines are separated by '\n'.
func DrawDebugOverlay(dst *ebiten.Image, msg string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	text.Draw(dst, msg, debugFace, op)
}
