//go:build !tinygo

package app

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"meshui/config"
	"meshui/hal"
	"meshui/ui"
)

func TestSimFeedDeliversInOrder(t *testing.T) {
	f := newSimFeed([]config.SimMessage{
		{AtMillis: 9000, Hops: 1, From: "Cy", Text: "third"},
		{AtMillis: 2000, Hops: 255, From: "Ann", Text: "first"},
		{AtMillis: 5000, Hops: 3, From: "Bob", Text: "second"},
	})
	c := ui.New(nil, nil)
	c.Begin(nil, nil, nil, "d", "v", 0)

	f.deliver(1999, c)
	if c.Unread() != 0 {
		t.Fatalf("Unread() = %d before first message", c.Unread())
	}
	f.deliver(5000, c)
	if c.Unread() != 2 {
		t.Fatalf("Unread() = %d, want 2", c.Unread())
	}
	if got := c.Preview().Origin; got != "(3) Bob" {
		t.Fatalf("Preview().Origin = %q, want (3) Bob", got)
	}
	f.deliver(60000, c)
	if c.Unread() != 3 || c.Preview().Body != "third" {
		t.Fatalf("Unread() = %d, body = %q", c.Unread(), c.Preview().Body)
	}
}

func TestSimFeedMarksMessagesRead(t *testing.T) {
	f := newSimFeed([]config.SimMessage{
		{AtMillis: 1000, ReadAtMillis: 3000, Hops: 1, From: "Ann", Text: "first"},
		{AtMillis: 2000, Hops: 1, From: "Bob", Text: "kept"},
		{AtMillis: 2500, ReadAtMillis: 4000, Hops: 1, From: "Cy", Text: "last"},
	})
	c := ui.New(nil, nil)
	c.Begin(nil, nil, nil, "d", "v", 0)

	tcs := []struct {
		at      uint64
		unread  int
		preview bool
	}{
		{at: 2500, unread: 3, preview: true},
		{at: 3000, unread: 2, preview: true},
		{at: 10000, unread: 1, preview: true},
	}
	for _, tc := range tcs {
		f.deliver(tc.at, c)
		if c.Unread() != tc.unread {
			t.Fatalf("deliver(%d): Unread() = %d, want %d", tc.at, c.Unread(), tc.unread)
		}
		if c.Preview().Active() != tc.preview {
			t.Fatalf("deliver(%d): Preview().Active() = %v, want %v", tc.at, c.Preview().Active(), tc.preview)
		}
	}
}

func TestSimFeedReadAllClearsPreview(t *testing.T) {
	f := newSimFeed([]config.SimMessage{
		{AtMillis: 1000, ReadAtMillis: 1000, Hops: 2, From: "Ann", Text: "seen"},
	})
	c := ui.New(nil, nil)
	c.Begin(nil, nil, nil, "d", "v", 0)

	f.deliver(1000, c)
	if c.Unread() != 0 {
		t.Fatalf("Unread() = %d, want 0", c.Unread())
	}
	if c.Preview().Active() {
		t.Fatalf("Preview() = %+v, want cleared", c.Preview())
	}
}

func TestHeadlessRunRendersAndLogs(t *testing.T) {
	var log bytes.Buffer
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Sim.Messages = []config.SimMessage{{AtMillis: 500, Hops: 2, From: "Ann", Text: "ping"}}

	h := hal.NewHost(hal.HostOptions{Log: &log})
	err := hal.RunHeadless(context.Background(), h, func(hh hal.HAL) func() error {
		return New(hh, cfg)
	}, hal.HeadlessConfig{Hz: 50, Ticks: 100, Fast: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	out := log.String()
	for _, want := range []string{"ui:begin", "ui:message", "origin=\"(2) Ann\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %q:\n%s", want, out)
		}
	}
	if h.PoweredOff() {
		t.Fatal("board powered off without a long press")
	}
}

func TestHeadlessLongPressPowersOff(t *testing.T) {
	var log bytes.Buffer
	cfg := config.Default()
	h := hal.NewHost(hal.HostOptions{
		Log:          &log,
		ButtonPeriod: 20 * time.Second,
		ButtonHold:   6 * time.Second,
	})
	err := hal.RunHeadless(context.Background(), h, func(hh hal.HAL) func() error {
		return New(hh, cfg)
	}, hal.HeadlessConfig{Hz: 100, Ticks: 2000, Fast: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if !h.PoweredOff() {
		t.Fatalf("board still powered after a 6s press:\n%s", log.String())
	}
	if ms := h.Clock().Millis(); ms > 7000 {
		t.Fatalf("runner kept going until %dms after power off", ms)
	}
}

type panelRec struct {
	w, h     int16
	fills    int
	pixels   int
	presents int
	power    []bool
}

func (p *panelRec) Size() (int16, int16)              { return p.w, p.h }
func (p *panelRec) SetPixel(x, y int16, c color.RGBA) { p.pixels++ }
func (p *panelRec) Display() error                    { p.presents++; return nil }
func (p *panelRec) SetPower(on bool) error            { p.power = append(p.power, on); return nil }
func (p *panelRec) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	p.fills++
	return nil
}

func TestGuardRecoversPanic(t *testing.T) {
	var log bytes.Buffer
	logger := newTestLogger(&log)
	p := &panelRec{w: 240, h: 135}

	step := guard(logger, p, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("step() = %v, want panic error", err)
	}
	if !strings.Contains(log.String(), "app:panic") {
		t.Fatalf("log = %q, want app:panic", log.String())
	}
	if p.fills == 0 || p.pixels == 0 || p.presents != 1 {
		t.Fatalf("panel fills=%d pixels=%d presents=%d", p.fills, p.pixels, p.presents)
	}
	if len(p.power) != 1 || !p.power[0] {
		t.Fatalf("power = %v, want [true]", p.power)
	}

	want := errors.New("plain")
	if err := guard(logger, nil, func() error { return want })(); err != want {
		t.Fatalf("guard passthrough = %v, want %v", err, want)
	}
}

func TestTakeRunes(t *testing.T) {
	tcs := []struct {
		in         string
		n          int16
		head, tail string
	}{
		{in: "abcdef", n: 4, head: "abcd", tail: "ef"},
		{in: "abc", n: 4, head: "abc", tail: ""},
		{in: "héllo", n: 2, head: "hé", tail: "llo"},
		{in: "x", n: 0, head: "", tail: "x"},
	}
	for _, tc := range tcs {
		head, tail := takeRunes(tc.in, tc.n)
		if head != tc.head || tail != tc.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tc.in, tc.n, head, tail, tc.head, tc.tail)
		}
	}
}
