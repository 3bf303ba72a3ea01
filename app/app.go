// Package app wires the HAL to the status UI and returns the per-iteration
// step the platform runners call.
package app

import (
	"log/slog"
	"sort"
	"time"

	"meshui/config"
	"meshui/display"
	"meshui/hal"
	"meshui/internal/buildinfo"
	"meshui/ui"
)

type system struct {
	log  *slog.Logger
	h    hal.HAL
	ctrl *ui.Controller
	feed *simFeed
}

// New builds the UI on h and returns its step function.
func New(h hal.HAL, cfg config.Config) func() error {
	s := newSystem(h, cfg)
	return guard(s.log, h.Panel(), s.step)
}

// Run starts the UI and loops forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg config.Config) {
	step := New(h, cfg)
	for {
		if err := step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg config.Config) *system {
	logger := slog.New(slog.NewTextHandler(h.Serial(), &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	opts := []ui.Option{ui.WithLogger(logger)}
	if led := h.LED(); led != nil {
		opts = append(opts, ui.WithIndicator(led))
	}
	if btn := h.Button(); btn != nil {
		opts = append(opts, ui.WithButton(btn, h.ButtonPressedLevel()))
	}
	ctrl := ui.New(h.Board(), h.Clock(), opts...)

	var disp display.Driver
	if p := h.Panel(); p != nil {
		disp = display.NewPanel(p, display.PanelConfig{
			Width:   cfg.Panel.Width,
			Height:  cfg.Panel.Height,
			OffsetX: cfg.Panel.OffsetX,
			OffsetY: cfg.Panel.OffsetY,
			Logger:  logger,
		})
	} else {
		logger.Warn("app:no-display")
	}

	var loc ui.LocationSource
	if l := h.Location(); l != nil {
		loc = l
	}

	ctrl.Begin(disp, config.NodePrefs{N: cfg.Node}, loc, buildinfo.Date, buildinfo.Version, cfg.Node.PIN)
	ctrl.SetConnected(cfg.Sim.Connected)

	return &system{
		log:  logger,
		h:    h,
		ctrl: ctrl,
		feed: newSimFeed(cfg.Sim.Messages),
	}
}

func (s *system) step() error {
	now := s.h.Clock().Millis()
	s.feed.deliver(now, s.ctrl)
	s.ctrl.Tick()
	return nil
}

// simFeed hands scripted messages to the UI as the clock passes them, and
// lowers the unread count as their read times pass.
type simFeed struct {
	msgs   []config.SimMessage
	next   int
	unread int
	reads  []uint64 // read times of delivered, still unread messages
}

func newSimFeed(msgs []config.SimMessage) *simFeed {
	sorted := append([]config.SimMessage(nil), msgs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AtMillis < sorted[j].AtMillis })
	return &simFeed{msgs: sorted}
}

func (f *simFeed) deliver(now uint64, c *ui.Controller) {
	for f.next < len(f.msgs) && f.msgs[f.next].AtMillis <= now {
		m := f.msgs[f.next]
		f.next++
		f.unread++
		if m.ReadAtMillis != 0 {
			f.reads = append(f.reads, m.ReadAtMillis)
		}
		c.NewMsg(m.Hops, m.From, m.Text, f.unread)
	}

	read := 0
	pending := f.reads[:0]
	for _, at := range f.reads {
		if at <= now {
			read++
			continue
		}
		pending = append(pending, at)
	}
	f.reads = pending
	if read > 0 {
		f.unread -= read
		c.MsgRead(f.unread)
	}
}
