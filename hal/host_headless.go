//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64 // stop after this many steps, 0 runs until ctx is done
	// Fast skips the ticker: every step advances the clock by exactly one
	// period and the next step runs immediately.
	Fast bool
}

// RunHeadless runs the UI without opening a window. It returns nil when
// the tick budget runs out or the UI powers the board off.
func RunHeadless(ctx context.Context, h *Host, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h.t.setVirtual(cfg.Fast)
	step := h.wrap(newApp(h))

	var tick <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for {
		if cfg.Fast {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			h.t.advance(virtualAt(n+1, cfg.Hz) - virtualAt(n, cfg.Hz))
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
			h.t.step()
		}

		if err := step(); err != nil {
			if errors.Is(err, ErrPoweredOff) {
				return nil
			}
			return err
		}
		n++
		if cfg.Ticks > 0 && n >= cfg.Ticks {
			return nil
		}
	}
}

// virtualAt is the simulated time of step n at hz steps per second.
func virtualAt(n uint64, hz int) time.Duration {
	return time.Duration(n * uint64(time.Second) / uint64(hz))
}
