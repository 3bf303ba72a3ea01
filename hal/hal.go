package hal

import (
	"errors"
	"image/color"
	"io"
	"time"

	"tinygo.org/x/drivers"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrPoweredOff is returned by a runner step once the board cut its
	// own power. Runners treat it as a clean exit.
	ErrPoweredOff = errors.New("board powered off")
)

// Serial is the debug console. Log output goes here.
type Serial interface {
	io.Reader
	io.Writer
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Panel is the physical display: something tinyfont can draw on that can
// also fill rectangles and switch its backlight.
type Panel interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetPower(on bool) error
}

// Board is the main board: battery sense, power latch and busy waits.
type Board interface {
	BatteryMilliVolts() int
	PowerOff()
	Delay(d time.Duration)
}

// Clock is a monotonic millisecond counter starting near zero at boot.
type Clock interface {
	Millis() uint64
}

// Location is a GPS receiver, when one is fitted.
type Location interface {
	HasFix() bool
	Valid() bool
	Latitude() float64
	Longitude() float64
	Altitude() float64
	Satellites() int
}

// HAL provides the only contact point between the UI and the outside world.
//
// LED, Button, Panel and Location return nil when the part is absent.
type HAL interface {
	Serial() Serial
	LED() LED
	Button() GPIOPin
	// ButtonPressedLevel is the level Button reads while held.
	ButtonPressedLevel() bool
	Panel() Panel
	Board() Board
	Clock() Clock
	Location() Location
}
