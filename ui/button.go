package ui

const (
	buttonPollMillis  = 100 // ten reads per second stands in for debouncing
	longPressMillis   = 5000
	powerOffLEDMillis = 10
)

// ButtonEvent is what a poll of the user button produced.
type ButtonEvent uint8

const (
	ButtonNone ButtonEvent = iota
	ButtonPressed
	ButtonReleased
	// ButtonLongReleased is a release after the button was held for more
	// than five seconds.
	ButtonLongReleased
)

func (e ButtonEvent) String() string {
	switch e {
	case ButtonNone:
		return "none"
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	case ButtonLongReleased:
		return "long-released"
	}
	return "unknown"
}

// Button classifies raw button levels into press/release edges. It samples
// at a fixed cadence instead of filtering contact bounce.
type Button struct {
	pressedLevel bool   // raw level that means "pressed"
	prev         bool   // last sampled level
	changedAt    uint64 // when prev was last changed
	nextPoll     uint64
}

// NewButton returns a classifier that starts out released.
func NewButton(pressedLevel bool) *Button {
	return &Button{pressedLevel: pressedLevel, prev: !pressedLevel}
}

// Poll samples in if a read is due at now. A failed read reports no event
// and is retried at the next cadence.
func (b *Button) Poll(now uint64, in ButtonInput) (ButtonEvent, error) {
	if in == nil || now < b.nextPoll {
		return ButtonNone, nil
	}
	b.nextPoll = now + buttonPollMillis

	level, err := in.Read()
	if err != nil {
		return ButtonNone, err
	}
	return b.sample(now, level), nil
}

func (b *Button) sample(now uint64, level bool) ButtonEvent {
	if level == b.prev {
		return ButtonNone
	}
	held := now - b.changedAt
	b.prev = level
	b.changedAt = now

	if level == b.pressedLevel {
		return ButtonPressed
	}
	if held > longPressMillis {
		return ButtonLongReleased
	}
	return ButtonReleased
}
