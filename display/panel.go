package display

import (
	"image/color"
	"io"
	"log/slog"

	"tinygo.org/x/drivers"
)

// Target is a physical panel: anything tinyfont can draw on that can also
// fill rectangles natively (st7789.Device, the host framebuffer).
type Target interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Powerer is implemented by targets that can switch their backlight/rail.
type Powerer interface {
	SetPower(on bool) error
}

const (
	DefaultWidth  = 128
	DefaultHeight = 64
)

// PanelConfig describes the logical canvas laid over a Target.
type PanelConfig struct {
	Width   int // logical width, DefaultWidth if zero
	Height  int // logical height, DefaultHeight if zero
	OffsetX int16
	OffsetY int16
	Logger  *slog.Logger
}

// Panel implements Driver on a physical Target, scaling every logical
// coordinate independently on each axis.
type Panel struct {
	t     Target
	scale Scale
	w, h  int
	log   *slog.Logger

	on       bool
	color    color.RGBA
	cx, cy   int16 // physical cursor
	textSize int16
}

// NewPanel returns a Panel for t. The panel starts powered off.
func NewPanel(t Target, cfg PanelConfig) *Panel {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pw, ph := t.Size()
	return &Panel{
		t:        t,
		scale:    ScaleFor(cfg.Width, cfg.Height, int(pw), int(ph), cfg.OffsetX, cfg.OffsetY),
		w:        cfg.Width,
		h:        cfg.Height,
		log:      logger,
		color:    Light.RGBA(),
		textSize: 1,
	}
}

// Scale reports the logical to physical mapping in use.
func (p *Panel) Scale() Scale { return p.scale }

func (p *Panel) TurnOn() {
	if p.on {
		return
	}
	p.setPower(true)
	p.on = true
	p.SetCursor(0, 0)
}

func (p *Panel) TurnOff() {
	p.setPower(false)
	p.on = false
}

func (p *Panel) IsOn() bool { return p.on }

func (p *Panel) setPower(on bool) {
	pw, ok := p.t.(Powerer)
	if !ok {
		return
	}
	if err := pw.SetPower(on); err != nil {
		p.fail("power", err)
	}
}

func (p *Panel) StartFrame() {
	pw, ph := p.t.Size()
	p.check("clear", p.t.FillRectangle(0, 0, pw, ph, Dark.RGBA()))
}

func (p *Panel) EndFrame() {
	p.check("present", p.t.Display())
}

func (p *Panel) SetColor(c Color) { p.color = c.RGBA() }

func (p *Panel) SetCursor(x, y int) {
	p.cx, p.cy = p.scale.Point(x, y)
}

func (p *Panel) SetTextSize(size int) {
	if size == 2 {
		p.textSize = 2
		return
	}
	p.textSize = 1
}

func (p *Panel) Print(s string) {
	p.check("print", drawText(p.t, p.cx, p.cy, p.textSize, s, p.color))
}

func (p *Panel) FillRect(x, y, w, h int) {
	px, py := p.scale.Point(x, y)
	pw, ph := p.scale.Size(w, h)
	if pw <= 0 || ph <= 0 {
		return
	}
	p.check("fill", p.t.FillRectangle(px, py, pw, ph, p.color))
}

func (p *Panel) DrawRect(x, y, w, h int) {
	px, py := p.scale.Point(x, y)
	pw, ph := p.scale.Size(w, h)
	if pw <= 0 || ph <= 0 {
		return
	}
	edges := [4][4]int16{
		{px, py, pw, 1},
		{px, py + ph - 1, pw, 1},
		{px, py, 1, ph},
		{px + pw - 1, py, 1, ph},
	}
	for _, e := range edges {
		if err := p.t.FillRectangle(e[0], e[1], e[2], e[3], p.color); err != nil {
			p.fail("rect", err)
			return
		}
	}
}

func (p *Panel) DrawBitmap(x, y int, bits []byte, w, h int) {
	p.check("bitmap", DrawScaledBitmap(p.t, x, y, bits, w, h, p.scale, p.color))
}

// TextWidth returns the logical width of s at the current text size.
func (p *Panel) TextWidth(s string) int {
	if p.scale.X <= 0 {
		return 0
	}
	return int(float32(physicalTextWidth(s, p.textSize)) / p.scale.X)
}

func (p *Panel) Width() int  { return p.w }
func (p *Panel) Height() int { return p.h }

func (p *Panel) check(op string, err error) {
	if err != nil {
		p.fail(op, err)
	}
}

func (p *Panel) fail(op string, err error) {
	p.log.Error("display: "+op, slog.String("err", err.Error()))
}
