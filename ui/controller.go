// Package ui is the handheld's screen and button controller. It is driven
// by a single caller invoking Tick once per main-loop iteration and never
// blocks, apart from a short pause right before a user-requested power off.
package ui

import (
	"io"
	"log/slog"
	"time"

	"meshui/display"
)

const (
	autoOffMillis    = 15000
	bootScreenMillis = 4000
	refreshMillis    = 1000
)

// Option configures optional hardware on a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithIndicator attaches a status LED.
func WithIndicator(led LED) Option {
	return func(c *Controller) { c.led = led }
}

// WithButton attaches the user button. pressedLevel is the raw level read
// while the button is held (false for the usual pull-up wiring).
func WithButton(in ButtonInput, pressedLevel bool) Option {
	return func(c *Controller) {
		if in == nil {
			return
		}
		c.btnIn = in
		c.button = NewButton(pressedLevel)
	}
}

// Controller decides what the display shows and when.
type Controller struct {
	board Board
	clock Clock
	log   *slog.Logger

	led    LED
	blink  Blinker
	btnIn  ButtonInput
	button *Button

	display   display.Driver
	prefs     Preferences
	sensors   LocationSource
	banner    string
	pin       uint32
	connected bool

	preview Preview
	unread  int

	currentPage int
	totalPages  int
	needRefresh bool
	nextRefresh uint64
	autoOff     uint64
	bootAt      uint64
	firstBoot   bool
}

// New returns a Controller with no display bound yet; see Begin.
func New(board Board, clock Clock, opts ...Option) *Controller {
	c := &Controller{
		board:       board,
		clock:       clock,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		totalPages:  1,
		needRefresh: true,
		firstBoot:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin binds the display and data sources. Any of disp, prefs and sensors
// may be nil; the parts that need them are skipped.
func (c *Controller) Begin(disp display.Driver, prefs Preferences, sensors LocationSource, buildDate, version string, pin uint32) {
	now := c.now()
	c.display = disp
	c.prefs = prefs
	c.sensors = sensors
	c.pin = pin
	c.banner = VersionBanner(version, buildDate)
	c.bootAt = now
	c.autoOff = now + autoOffMillis
	c.ClearMsgPreview()
	if c.display != nil {
		c.display.TurnOn()
	}
	c.log.Info("ui:begin",
		slog.String("version", c.banner),
		slog.Bool("display", c.display != nil),
		slog.Bool("location", sensors != nil),
	)
}

// SetConnected records whether a companion app is paired and authenticated.
func (c *Controller) SetConnected(connected bool) {
	if c.connected != connected {
		c.needRefresh = true
	}
	c.connected = connected
}

// HasDisplay reports whether a display is bound.
func (c *Controller) HasDisplay() bool { return c.display != nil }

// MsgRead updates the unread count. Reaching zero clears the preview.
func (c *Controller) MsgRead(unread int) {
	c.unread = unread
	if unread == 0 {
		c.ClearMsgPreview()
	}
}

// ClearMsgPreview drops the preview. The unread count is left as is.
func (c *Controller) ClearMsgPreview() {
	c.preview = Preview{}
	c.needRefresh = true
}

// NewMsg shows a preview of an incoming message and wakes the display.
func (c *Controller) NewMsg(hops uint8, from, text string, unread int) {
	c.unread = unread
	c.preview = Preview{
		Origin: OriginLabel(hops, from),
		Body:   truncate(text, maxBody),
	}
	c.log.Info("ui:message", slog.String("origin", c.preview.Origin), slog.Int("unread", unread))

	if c.display == nil {
		return
	}
	if !c.display.IsOn() {
		c.display.TurnOn()
	}
	c.autoOff = c.now() + autoOffMillis
	c.needRefresh = true
}

// Tick runs one control cycle: button, LED, page count, render, auto-off.
func (c *Controller) Tick() {
	now := c.now()

	c.handleButton(now)
	c.handleLED(now)

	c.totalPages = 1
	if c.hasLocation() {
		c.totalPages = 2
	}

	if c.display == nil || !c.display.IsOn() {
		return
	}
	if c.firstBoot && now-c.bootAt >= bootScreenMillis {
		c.firstBoot = false
		c.needRefresh = true
	}
	if now >= c.nextRefresh && c.needRefresh {
		c.display.StartFrame()
		c.render(now)
		c.display.EndFrame()
		c.nextRefresh = now + refreshMillis
	}
	if now > c.autoOff {
		c.display.TurnOff()
		c.log.Debug("ui:display-off")
	}
}

func (c *Controller) handleButton(now uint64) {
	if c.button == nil {
		return
	}
	ev, err := c.button.Poll(now, c.btnIn)
	if err != nil {
		c.log.Warn("ui:button-read", slog.String("err", err.Error()))
		return
	}
	switch ev {
	case ButtonPressed:
		c.onPress(now)
	case ButtonLongReleased:
		c.powerOff()
	}
}

func (c *Controller) onPress(now uint64) {
	if c.display != nil {
		switch {
		case !c.display.IsOn():
			c.display.TurnOn()
			c.needRefresh = true
			c.log.Debug("ui:display-on")
		case c.preview.Active():
			c.ClearMsgPreview()
			c.log.Debug("ui:preview-dismissed", slog.Int("unread", c.unread))
		default:
			c.currentPage = (c.currentPage + 1) % c.totalPages
			c.needRefresh = true
			c.log.Debug("ui:page", slog.Int("page", c.currentPage))
		}
	}
	c.autoOff = now + autoOffMillis
}

func (c *Controller) powerOff() {
	c.log.Info("ui:power-off")
	if c.led != nil {
		c.led.Low()
		if c.board != nil {
			c.board.Delay(powerOffLEDMillis * time.Millisecond)
		}
	}
	if c.board != nil {
		c.board.PowerOff()
	}
}

func (c *Controller) handleLED(now uint64) {
	if c.led == nil {
		return
	}
	on, changed := c.blink.Update(now, c.unread)
	if !changed {
		return
	}
	if on {
		c.led.High()
	} else {
		c.led.Low()
	}
}

func (c *Controller) hasLocation() bool {
	return c.sensors != nil && c.sensors.HasFix()
}

func (c *Controller) now() uint64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Millis()
}

// CurrentPage returns the selected home page.
func (c *Controller) CurrentPage() int { return c.currentPage }

// TotalPages returns the page count computed on the last Tick.
func (c *Controller) TotalPages() int { return c.totalPages }

// Preview returns the message preview, empty when none is shown.
func (c *Controller) Preview() Preview { return c.preview }

// Unread returns the last unread count reported.
func (c *Controller) Unread() int { return c.unread }

// Banner returns the version line shown on the boot screen.
func (c *Controller) Banner() string { return c.banner }
