//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"image/color"

	"meshui/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const windowZoom = 3

// RunWindow opens a desktop window showing the panel. Space or Enter is
// the user button. It blocks until the window closes or the UI powers off.
func RunWindow(h *Host, newApp func(HAL) func() error) error {
	step := h.wrap(newApp(h))

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("meshui (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.fb.width*windowZoom, h.panel.fb.height*windowZoom)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ErrPoweredOff) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *Host
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	if k := g.h.key; k != nil {
		if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter) {
			k.drive(true)
		} else {
			k.release()
		}
	}
	g.h.t.step()
	return g.step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.panel.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.front))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	if g.h.led.isOn() {
		vector.DrawFilledRect(screen, float32(fb.width-4), 0, 4, 4, color.RGBA{G: 0xFF, A: 0xFF}, false)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.fb.width, g.h.panel.fb.height
}
