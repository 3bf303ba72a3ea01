package display

import (
	"image/color"
	"math"
)

// RectFiller is the one primitive the bitmap blitter needs from a panel.
type RectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Scale maps logical canvas coordinates onto physical panel pixels.
type Scale struct {
	X, Y             float32
	OffsetX, OffsetY int16
}

// ScaleFor returns the scale that stretches a logical canvas over a physical one.
func ScaleFor(logicalW, logicalH, physW, physH int, offX, offY int16) Scale {
	s := Scale{X: 1, Y: 1, OffsetX: offX, OffsetY: offY}
	if logicalW > 0 && physW > 0 {
		s.X = float32(physW) / float32(logicalW)
	}
	if logicalH > 0 && physH > 0 {
		s.Y = float32(physH) / float32(logicalH)
	}
	return s
}

// Point converts a logical coordinate to a physical one.
func (s Scale) Point(x, y int) (int16, int16) {
	return s.OffsetX + s.spanX(x), s.OffsetY + s.spanY(y)
}

// Size converts a logical extent to a physical one.
func (s Scale) Size(w, h int) (int16, int16) {
	return s.spanX(w), s.spanY(h)
}

// RowHeight is the physical height drawn for one bitmap row. It overdraws
// the next row by a pixel so fractional scales never leave seams.
func (s Scale) RowHeight() int16 {
	return int16(math.Ceil(float64(s.Y))) + 1
}

func (s Scale) spanX(v int) int16 { return int16(float32(v) * s.X) }
func (s Scale) spanY(v int) int16 { return int16(float32(v) * s.Y) }

// DrawScaledBitmap renders a 1bpp bitmap (row-major, MSB first, rows padded
// to whole bytes) at logical position (x, y). Every maximal run of set bits
// in a row becomes one FillRectangle call.
//
// Run edges are computed from scaled bit boundaries, so neighbouring runs
// in a row share no pixels and every set bit's footprint is covered.
func DrawScaledBitmap(dst RectFiller, x, y int, bits []byte, w, h int, s Scale, c color.RGBA) error {
	if dst == nil || w <= 0 || h <= 0 {
		return nil
	}
	stride := (w + 7) / 8
	ox, oy := s.Point(x, y)
	rowH := s.RowHeight()

	for row := 0; row < h; row++ {
		base := row * stride
		if base >= len(bits) {
			return nil
		}
		top := oy + s.spanY(row)

		start := -1
		for bx := 0; bx <= w; bx++ {
			set := false
			if bx < w {
				off := base + bx/8
				set = off < len(bits) && bits[off]&(0x80>>(bx&7)) != 0
			}
			if set {
				if start < 0 {
					start = bx
				}
				continue
			}
			if start < 0 {
				continue
			}
			x0 := ox + s.spanX(start)
			x1 := ox + s.spanX(bx)
			start = -1
			if x1 <= x0 {
				continue
			}
			if err := dst.FillRectangle(x0, top, x1-x0, rowH, c); err != nil {
				return err
			}
		}
	}
	return nil
}
