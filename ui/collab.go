package ui

import "time"

// Preferences is the read-only radio configuration shown on the home page.
type Preferences interface {
	NodeName() string
	Freq() float64 // MHz
	SF() int
	BW() float64 // kHz
	CR() int
}

// LocationSource is the read-only view of the GPS/sensor manager.
type LocationSource interface {
	// HasFix reports whether a fix-capable source is fitted at all.
	HasFix() bool
	// Valid reports whether the current reading holds real coordinates.
	Valid() bool
	Latitude() float64
	Longitude() float64
	Altitude() float64 // meters
	Satellites() int
}

// Board is the part of the main board the UI can ask things of.
type Board interface {
	BatteryMilliVolts() int
	// PowerOff cuts the board's own power. It does not come back.
	PowerOff()
	Delay(d time.Duration)
}

// Clock is a monotonic millisecond counter.
type Clock interface {
	Millis() uint64
}

// LED is the optional status indicator.
type LED interface {
	High()
	Low()
}

// ButtonInput is the optional user button; Read returns the raw level.
type ButtonInput interface {
	Read() (level bool, err error)
}
