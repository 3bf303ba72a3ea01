//go:build !tinygo

package hal

import (
	"io"
	"os"
	"sync"
	"time"
)

const (
	// Physical resolution of the ST7789 panel the host window mimics.
	HostPanelWidth  = 240
	HostPanelHeight = 135

	defaultHostBatteryMilliVolts = 3900
)

// HostOptions configures the simulated board.
type HostOptions struct {
	PanelWidth  int // HostPanelWidth if zero
	PanelHeight int // HostPanelHeight if zero

	BatteryMilliVolts int
	// Location is the simulated GPS receiver; nil means none fitted.
	Location *SimLocation

	// ButtonPeriod > 0 replaces the keyboard button with one that is
	// pressed for ButtonHold at the start of every period.
	ButtonPeriod time.Duration
	ButtonHold   time.Duration

	// Log receives serial console output, os.Stderr if nil.
	Log io.Writer
}

// Host is the desktop HAL: a framebuffer-backed panel, a keyboard or
// scripted button and a simulated battery.
type Host struct {
	serial *hostSerial
	led    *hostLED
	button GPIOPin
	key    *virtualPin // nil when the button is scripted
	panel  *hostPanel
	board  *hostBoard
	t      *hostTime
	loc    *SimLocation
}

// NewHost returns a host HAL implementation.
func NewHost(opts HostOptions) *Host {
	if opts.PanelWidth <= 0 {
		opts.PanelWidth = HostPanelWidth
	}
	if opts.PanelHeight <= 0 {
		opts.PanelHeight = HostPanelHeight
	}
	if opts.BatteryMilliVolts <= 0 {
		opts.BatteryMilliVolts = defaultHostBatteryMilliVolts
	}
	w := opts.Log
	if w == nil {
		w = os.Stderr
	}

	t := newHostTime()
	h := &Host{
		serial: &hostSerial{r: os.Stdin, w: w},
		led:    &hostLED{},
		panel:  newHostPanel(opts.PanelWidth, opts.PanelHeight),
		board:  &hostBoard{t: t, mv: opts.BatteryMilliVolts},
		t:      t,
		loc:    opts.Location,
	}

	if opts.ButtonPeriod > 0 {
		pin := newSignalPinWithClock("BTN", opts.ButtonPeriod, opts.ButtonHold, t.wallClock)
		_ = pin.Configure(GPIOModeInput, GPIOPullDown)
		h.button = pin
	} else {
		pin := newVirtualPin("BTN", GPIOCapInput|GPIOCapPullDown)
		_ = pin.Configure(GPIOModeInput, GPIOPullDown)
		h.key = pin
		h.button = pin
	}
	return h
}

func (h *Host) Serial() Serial  { return h.serial }
func (h *Host) LED() LED        { return h.led }
func (h *Host) Button() GPIOPin { return h.button }
func (h *Host) Panel() Panel    { return h.panel }
func (h *Host) Board() Board    { return h.board }
func (h *Host) Clock() Clock    { return h.t }

// ButtonPressedLevel is high: the host button is wired with a pull-down.
func (h *Host) ButtonPressedLevel() bool { return true }

func (h *Host) Location() Location {
	if h.loc == nil {
		return nil
	}
	return h.loc
}

// PoweredOff reports whether the UI asked the board to cut power.
func (h *Host) PoweredOff() bool { return h.board.poweredOff() }

// wrap turns a power-off request into ErrPoweredOff so runners stop.
func (h *Host) wrap(step func() error) func() error {
	return func() error {
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if h.board.poweredOff() {
			return ErrPoweredOff
		}
		return nil
	}
}

type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

type hostBoard struct {
	mu  sync.Mutex
	t   *hostTime
	mv  int
	off bool
}

func (b *hostBoard) BatteryMilliVolts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mv
}

func (b *hostBoard) PowerOff() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.off = true
}

// Delay advances simulated time directly when the clock is virtual.
func (b *hostBoard) Delay(d time.Duration) {
	if b.t.isVirtual() {
		b.t.advance(d)
		return
	}
	time.Sleep(d)
}

func (b *hostBoard) poweredOff() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.off
}

// SimLocation is a fixed GPS reading. Fix marks a receiver as fitted;
// Position marks the reading as holding real coordinates.
type SimLocation struct {
	Fix      bool
	Position bool
	Lat, Lon float64
	Alt      float64
	Sats     int
}

func (l *SimLocation) HasFix() bool       { return l.Fix }
func (l *SimLocation) Valid() bool        { return l.Position }
func (l *SimLocation) Latitude() float64  { return l.Lat }
func (l *SimLocation) Longitude() float64 { return l.Lon }
func (l *SimLocation) Altitude() float64  { return l.Alt }
func (l *SimLocation) Satellites() int    { return l.Sats }
