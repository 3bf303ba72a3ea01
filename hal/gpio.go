package hal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// virtualPin is a host-side pin whose input level is set by the window's
// key handler (or a test) through drive.
type virtualPin struct {
	mu         sync.Mutex
	name       string
	caps       GPIOCaps
	configured bool
	mode       GPIOMode
	pull       GPIOPull
	level      bool
	driven     bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	p.configured = true
	return nil
}

// Read returns the driven level, or the pull level for an undriven input.
func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.configured {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	if p.mode == GPIOModeInput && !p.driven {
		return p.pull == GPIOPullUp, nil
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput || !p.configured {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// drive sets the level seen by Read on an input, as an external circuit would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	p.driven = true
}

// release stops driving the pin so it floats back to its pull level.
func (p *virtualPin) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.driven = false
}

// signalPin reads high for the first `high` of every `period`. Headless
// runs use it as a button that gets pressed on a schedule.
type signalPin struct {
	mu   sync.Mutex
	name string

	mode GPIOMode
	pull GPIOPull

	t0     time.Time
	now    func() time.Time
	period time.Duration
	high   time.Duration
}

func newSignalPinWithClock(name string, period, high time.Duration, now func() time.Time) GPIOPin {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = 1 * time.Second
	}
	if high < 0 {
		high = 0
	}
	if high > period {
		high = period
	}
	return &signalPin{
		name:   name,
		mode:   GPIOModeInput,
		pull:   GPIOPullNone,
		t0:     now(),
		now:    now,
		period: period,
		high:   high,
	}
}

func (p *signalPin) Name() string   { return p.name }
func (p *signalPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullDown }

func (p *signalPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	if pull == GPIOPullUp {
		return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
	}
	p.mode = mode
	p.pull = pull
	return nil
}

func (p *signalPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode != GPIOModeInput {
		return false, fmt.Errorf("gpio: pin %s: not configured for input", p.name)
	}
	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	phase := elapsed % p.period
	return phase < p.high, nil
}

func (p *signalPin) Write(level bool) error {
	_ = level
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}
