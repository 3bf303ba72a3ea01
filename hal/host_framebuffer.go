//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is a double-buffered RGB565 surface. Drawing goes to
// back; present copies it to front, which is what the window shows.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	back   []byte
	front  []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		back:   make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int  { return f.width }
func (f *hostFramebuffer) Height() int { return f.height }

func (f *hostFramebuffer) present() {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
}

// blank clears the visible buffer without touching back.
func (f *hostFramebuffer) blank() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.front {
		f.front[i] = 0
	}
}

func (f *hostFramebuffer) fill(x0, y0, x1, y1 int, pixel uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.back[off] = lo
			f.back[off+1] = hi
		}
	}
}

func (f *hostFramebuffer) pixelAt(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return uint16(f.front[off]) | uint16(f.front[off+1])<<8
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}
