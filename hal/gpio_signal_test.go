package hal

import (
	"testing"
	"time"
)

func TestSignalPinRead(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	pin := newSignalPinWithClock("BTN", 10*time.Second, 2*time.Second, clock)
	if pin == nil {
		t.Fatal("expected pin")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullDown); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	tcs := []struct {
		at   time.Duration
		want bool
	}{
		{at: 0, want: true},
		{at: 1999 * time.Millisecond, want: true},
		{at: 2 * time.Second, want: false},
		{at: 3 * time.Second, want: false},
		{at: 11 * time.Second, want: true},
	}
	for _, tc := range tcs {
		now = time.Unix(0, 0).Add(tc.at)
		level, err := pin.Read()
		if err != nil {
			t.Fatalf("Read at %v: %v", tc.at, err)
		}
		if level != tc.want {
			t.Fatalf("Read at %v = %v, want %v", tc.at, level, tc.want)
		}
	}
}

func TestSignalPinRejectsOutput(t *testing.T) {
	pin := newSignalPinWithClock("BTN", time.Second, 0, time.Now)
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("Configure(output) succeeded")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("Write succeeded on input-only pin")
	}
	if newSignalPinWithClock(" ", time.Second, 0, time.Now) != nil {
		t.Fatal("blank name returned a pin")
	}
}

func TestVirtualPinPullAndDrive(t *testing.T) {
	pin := newVirtualPin("BTN", GPIOCapInput|GPIOCapPullUp|GPIOCapPullDown)
	if _, err := pin.Read(); err == nil {
		t.Fatal("Read before Configure succeeded")
	}

	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if level, _ := pin.Read(); !level {
		t.Fatal("pull-up input reads low")
	}

	pin.drive(false)
	if level, _ := pin.Read(); level {
		t.Fatal("driven-low input reads high")
	}
	pin.release()
	if level, _ := pin.Read(); !level {
		t.Fatal("released input did not return to pull level")
	}

	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("output configured on input-only pin")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("Write succeeded on input")
	}
}
