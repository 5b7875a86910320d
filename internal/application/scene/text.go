package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the font used for labels, HUD and menus
var Face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawText draws s with its top edge at y. When centered, x is the
// horizontal center of the text, otherwise its left edge.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, centered bool) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 16
	if centered {
		op.PrimaryAlign = ebtext.AlignCenter
	}
	ebtext.Draw(screen, s, Face, op)
}
