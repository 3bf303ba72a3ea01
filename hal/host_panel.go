//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// hostPanel implements Panel over a hostFramebuffer, standing in for the
// ST7789. Powering off blanks the window like a dark backlight would.
type hostPanel struct {
	fb *hostFramebuffer

	mu       sync.Mutex
	on       bool
	presents int
}

var _ drivers.Displayer = (*hostPanel)(nil)

func newHostPanel(width, height int) *hostPanel {
	return &hostPanel{fb: newHostFramebuffer(width, height)}
}

func (d *hostPanel) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *hostPanel) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.width || iy < 0 || iy >= d.fb.height {
		return
	}
	d.fb.fill(ix, iy, ix+1, iy+1, rgb565(c))
}

func (d *hostPanel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w, h := d.fb.width, d.fb.height
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	d.fb.fill(x0, y0, x1, y1, rgb565(c))
	return nil
}

// Display publishes the drawn frame. Frames drawn while off stay hidden.
func (d *hostPanel) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.presents++
	if d.on {
		d.fb.present()
	}
	return nil
}

func (d *hostPanel) SetPower(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.on = on
	if on {
		d.fb.present()
	} else {
		d.fb.blank()
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
