package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws s with its top-left corner at (x, y)
func DrawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawCenteredText draws s horizontally centered on the screen
func DrawCenteredText(screen *ebiten.Image, s string, y float64, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2
	DrawText(screen, s, x, y, c)
}

// DrawLabel draws s centered on (x, y)
func DrawLabel(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	w, h := text.Measure(s, face, 0)
	DrawText(screen, s, x-w/2, y-h/2, c)
}
