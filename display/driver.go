// Package display implements the drawing capability the status UI renders
// through: a small logical canvas (128x64 by default) stretched onto
// whatever physical panel the board carries.
package display

import "image/color"

// Color is one of the few named colors the UI draws with. Monochrome
// panels collapse everything except Dark to "on".
type Color uint8

const (
	Dark Color = iota
	Light
	Red
	Green
	Blue
	Yellow
	Orange
)

func (c Color) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	}
	return "unknown"
}

// RGBA returns the panel color for c. Unknown values render as Light.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Dark:
		return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	case Red:
		return color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	case Green:
		return color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	case Blue:
		return color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	case Yellow:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	case Orange:
		return color.RGBA{R: 0xFF, G: 0x80, B: 0x00, A: 0xFF}
	}
	return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}

// Driver is the drawing surface the screen controller owns. All
// coordinates are logical canvas pixels.
//
// Draw calls are only valid between StartFrame and EndFrame.
type Driver interface {
	TurnOn()
	TurnOff()
	IsOn() bool

	StartFrame()
	EndFrame()

	SetColor(c Color)
	SetCursor(x, y int)
	SetTextSize(size int)
	Print(s string)
	DrawRect(x, y, w, h int)
	FillRect(x, y, w, h int)
	DrawBitmap(x, y int, bits []byte, w, h int)

	TextWidth(s string) int
	Width() int
	Height() int
}
