//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

type tinyGoClock struct {
	boot time.Time
}

func newTinyGoClock() *tinyGoClock {
	return &tinyGoClock{boot: time.Now()}
}

func (c *tinyGoClock) Millis() uint64 {
	return uint64(time.Since(c.boot) / time.Millisecond)
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}

// machinePin is a GPIOPin on a real RP2040 pin.
type machinePin struct {
	name       string
	pin        machine.Pin
	configured bool
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case mode == GPIOModeInput && pull == GPIOPullUp:
		m = machine.PinInputPullup
	case mode == GPIOModeInput && pull == GPIOPullDown:
		m = machine.PinInputPulldown
	case mode == GPIOModeInput:
		m = machine.PinInput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	p.configured = true
	return nil
}

func (p *machinePin) Read() (bool, error) {
	if !p.configured {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	if !p.configured {
		return fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	p.pin.Set(level)
	return nil
}
