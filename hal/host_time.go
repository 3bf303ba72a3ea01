//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostTime is a millisecond counter fed by the runner. In real-time mode
// step folds in wall-clock time since the last call; in virtual mode only
// advance moves it.
type hostTime struct {
	mu      sync.Mutex
	ms      uint64
	virtual bool

	last time.Time
	acc  time.Duration
	frac time.Duration // sub-millisecond part of virtual advances
}

func newHostTime() *hostTime {
	return &hostTime{}
}

func (t *hostTime) Millis() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ms
}

func (t *hostTime) step() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.ms += ticks
}

func (t *hostTime) advance(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frac += d
	t.ms += uint64(t.frac / time.Millisecond)
	t.frac %= time.Millisecond
}

func (t *hostTime) setVirtual(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.virtual = v
}

func (t *hostTime) isVirtual() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.virtual
}

// wallClock maps the counter onto a time.Time for pins that take a clock.
func (t *hostTime) wallClock() time.Time {
	return time.Unix(0, 0).Add(time.Duration(t.Millis()) * time.Millisecond)
}
