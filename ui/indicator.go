package ui

const (
	blinkCycleMillis = 4000
	blinkOnMillis    = 20
	blinkOnMsgMillis = 200
)

// Blinker drives the status LED: a short flash every four seconds, a
// longer one while there are unread messages.
type Blinker struct {
	on        bool
	phaseEnds uint64
	lastOn    uint64 // length of the most recent on phase
}

// Update advances the blink phase. changed reports whether the LED needs
// to be written.
func (b *Blinker) Update(now uint64, unread int) (on, changed bool) {
	if now < b.phaseEnds {
		return b.on, false
	}
	if b.on {
		b.on = false
		b.phaseEnds = now + blinkCycleMillis - b.lastOn
		return false, true
	}
	b.on = true
	b.lastOn = blinkOnMillis
	if unread > 0 {
		b.lastOn = blinkOnMsgMillis
	}
	b.phaseEnds = now + b.lastOn
	return true, true
}
