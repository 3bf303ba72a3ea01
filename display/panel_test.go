package display

import (
	"errors"
	"image/color"
	"testing"
)

type fakeTarget struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	fills    []rect
	presents int
	power    []bool
	fillErr  error
}

func newFakeTarget(w, h int16) *fakeTarget {
	return &fakeTarget{w: w, h: h, pixels: map[[2]int16]color.RGBA{}}
}

func (f *fakeTarget) Size() (x, y int16) { return f.w, f.h }

func (f *fakeTarget) SetPixel(x, y int16, c color.RGBA) {
	f.pixels[[2]int16{x, y}] = c
}

func (f *fakeTarget) Display() error {
	f.presents++
	return nil
}

func (f *fakeTarget) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	if f.fillErr != nil {
		return f.fillErr
	}
	f.fills = append(f.fills, rect{x, y, w, h})
	return nil
}

func (f *fakeTarget) SetPower(on bool) error {
	f.power = append(f.power, on)
	return nil
}

func TestPanelScalesLogicalCanvas(t *testing.T) {
	p := NewPanel(newFakeTarget(240, 135), PanelConfig{OffsetY: 1})

	if p.Width() != 128 || p.Height() != 64 {
		t.Fatalf("logical size = %dx%d, want 128x64", p.Width(), p.Height())
	}
	s := p.Scale()
	if s.X != 1.875 || s.Y != 2.109375 {
		t.Fatalf("scale = %v x %v, want 1.875 x 2.109375", s.X, s.Y)
	}
	x, y := s.Point(10, 10)
	if x != 18 || y != 22 {
		t.Fatalf("Point(10,10) = (%d,%d), want (18,22)", x, y)
	}
}

func TestPanelPowerIsTracked(t *testing.T) {
	tgt := newFakeTarget(128, 64)
	p := NewPanel(tgt, PanelConfig{})

	if p.IsOn() {
		t.Fatal("new panel is on")
	}
	p.TurnOn()
	p.TurnOn()
	if !p.IsOn() {
		t.Fatal("IsOn() = false after TurnOn")
	}
	p.TurnOff()
	if p.IsOn() {
		t.Fatal("IsOn() = true after TurnOff")
	}
	want := []bool{true, false}
	if len(tgt.power) != len(want) || tgt.power[0] != want[0] || tgt.power[1] != want[1] {
		t.Fatalf("power calls = %v, want %v", tgt.power, want)
	}
}

func TestPanelFrameClearsAndPresents(t *testing.T) {
	tgt := newFakeTarget(240, 135)
	p := NewPanel(tgt, PanelConfig{})

	p.StartFrame()
	p.SetColor(Green)
	p.FillRect(0, 0, 4, 4)
	p.EndFrame()

	if len(tgt.fills) != 2 {
		t.Fatalf("fills = %v, want clear + rect", tgt.fills)
	}
	if got := tgt.fills[0]; got != (rect{0, 0, 240, 135}) {
		t.Fatalf("clear = %+v, want full panel", got)
	}
	if got := tgt.fills[1]; got != (rect{0, 0, 7, 8}) {
		t.Fatalf("fill = %+v, want {0 0 7 8}", got)
	}
	if tgt.presents != 1 {
		t.Fatalf("presents = %d, want 1", tgt.presents)
	}
}

func TestPanelDrawRectOutlines(t *testing.T) {
	tgt := newFakeTarget(128, 64)
	p := NewPanel(tgt, PanelConfig{})

	p.DrawRect(10, 5, 18, 9)
	want := []rect{
		{10, 5, 18, 1},
		{10, 13, 18, 1},
		{10, 5, 1, 9},
		{27, 5, 1, 9},
	}
	if len(tgt.fills) != len(want) {
		t.Fatalf("fills = %v, want %v", tgt.fills, want)
	}
	for i := range want {
		if tgt.fills[i] != want[i] {
			t.Fatalf("fills[%d] = %+v, want %+v", i, tgt.fills[i], want[i])
		}
	}
}

func TestPanelPrintDrawsPixels(t *testing.T) {
	tgt := newFakeTarget(128, 64)
	p := NewPanel(tgt, PanelConfig{})

	p.SetColor(Yellow)
	p.SetCursor(0, 0)
	p.Print("M")
	if len(tgt.pixels) == 0 {
		t.Fatal("Print drew no pixels")
	}
	for pt, c := range tgt.pixels {
		if c != Yellow.RGBA() {
			t.Fatalf("pixel %v color = %v, want yellow", pt, c)
		}
		if pt[1] < 0 {
			t.Fatalf("pixel %v drawn above the cursor", pt)
		}
	}
}

func TestPanelTextWidthScalesBack(t *testing.T) {
	small := NewPanel(newFakeTarget(128, 64), PanelConfig{})
	big := NewPanel(newFakeTarget(256, 128), PanelConfig{})

	w1 := small.TextWidth("Searching...")
	w2 := big.TextWidth("Searching...")
	if w1 <= 0 {
		t.Fatalf("TextWidth = %d, want > 0", w1)
	}
	// Same glyphs on a panel twice as wide take half the logical width.
	if w2*2 > w1+1 || w2*2 < w1-1 {
		t.Fatalf("TextWidth on 2x panel = %d, want about %d", w2, w1/2)
	}

	small.SetTextSize(2)
	if got := small.TextWidth("Searching..."); got != 2*w1 {
		t.Fatalf("TextWidth at size 2 = %d, want %d", got, 2*w1)
	}
}

func TestPanelSwallowsTargetErrors(t *testing.T) {
	tgt := newFakeTarget(128, 64)
	tgt.fillErr = errors.New("bus busy")
	p := NewPanel(tgt, PanelConfig{})

	p.StartFrame()
	p.FillRect(0, 0, 1, 1)
	p.DrawBitmap(0, 0, []byte{0xFF}, 8, 1)
	p.EndFrame()
	if tgt.presents != 1 {
		t.Fatalf("presents = %d, want 1", tgt.presents)
	}
}

func TestColorRGBA(t *testing.T) {
	if got := Dark.RGBA(); got.R|got.G|got.B != 0 {
		t.Fatalf("Dark = %v, want black", got)
	}
	if got := Color(99).RGBA(); got != Light.RGBA() {
		t.Fatalf("unknown color = %v, want light", got)
	}
	if Orange.String() != "orange" {
		t.Fatalf("Orange.String() = %q", Orange.String())
	}
}
