package display

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// textAscent is the distance from a glyph's top to its baseline, so text
// can be positioned by its top-left corner like the logical cursor is.
var textAscent = fontAscent(textFont)

func fontAscent(f tinyfont.Fonter) int16 {
	info := f.GetGlyph('M').Info()
	if a := -int16(info.YOffset); a > 0 {
		return a
	}
	return int16(f.GetYAdvance())
}

// glyphCanvas is handed to tinyfont instead of the panel: it anchors glyph
// pixels at a physical origin and magnifies them by an integer factor.
type glyphCanvas struct {
	t    Target
	x, y int16
	k    int16
	err  error
}

func (g *glyphCanvas) Size() (x, y int16) { return g.t.Size() }

func (g *glyphCanvas) SetPixel(x, y int16, c color.RGBA) {
	if g.err != nil {
		return
	}
	if g.k <= 1 {
		g.t.SetPixel(g.x+x, g.y+y, c)
		return
	}
	g.err = g.t.FillRectangle(g.x+x*g.k, g.y+y*g.k, g.k, g.k, c)
}

func (g *glyphCanvas) Display() error { return nil }

func drawText(t Target, x, y, k int16, s string, c color.RGBA) error {
	if k < 1 {
		k = 1
	}
	g := &glyphCanvas{t: t, x: x, y: y, k: k}
	tinyfont.WriteLine(g, textFont, 0, textAscent, s, c)
	return g.err
}

// physicalTextWidth is the rendered width of s in panel pixels.
func physicalTextWidth(s string, k int16) int {
	if k < 1 {
		k = 1
	}
	_, outbox := tinyfont.LineWidth(textFont, s)
	return int(outbox) * int(k)
}
