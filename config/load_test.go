//go:build !tinygo

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
node:
  name: Hilltop
  freq: 915.0
  sf: 10
  pin: 123456
sim:
  battery_mv: 3650
  button_period: 3s
  gps:
    present: true
    fix: true
    lat: 51.5
    sats: 9
  messages:
    - at_ms: 6000
      hops: 255
      from: Bob
      text: hello mesh
log:
  level: debug
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "meshui.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoadFile(t *testing.T) {
	c, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Node.Name != "Hilltop" || c.Node.Freq != 915.0 || c.Node.SF != 10 || c.Node.PIN != 123456 {
		t.Fatalf("Node = %+v", c.Node)
	}
	// Unset keys keep their defaults.
	if c.Node.BW != 250 || c.Node.CR != 5 || c.Hz != 60 || c.Panel.PhysicalWidth != 240 {
		t.Fatalf("defaults lost: node=%+v hz=%d panel=%+v", c.Node, c.Hz, c.Panel)
	}
	if c.Sim.BatteryMilliVolts != 3650 || c.Sim.ButtonPeriod != 3*time.Second {
		t.Fatalf("Sim = %+v", c.Sim)
	}
	if !c.Sim.GPS.Present || !c.Sim.GPS.Fix || c.Sim.GPS.Sats != 9 {
		t.Fatalf("GPS = %+v", c.Sim.GPS)
	}
	if len(c.Sim.Messages) != 1 {
		t.Fatalf("Messages = %+v, want 1", c.Sim.Messages)
	}
	m := c.Sim.Messages[0]
	if m.AtMillis != 6000 || m.Hops != 255 || m.From != "Bob" || m.Text != "hello mesh" {
		t.Fatalf("Messages[0] = %+v", m)
	}
	if c.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", c.Log.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MESHUI_NODE_NAME", "FromEnv")
	t.Setenv("MESHUI_HZ", "30")

	c, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Node.Name != "FromEnv" {
		t.Fatalf("Node.Name = %q, want FromEnv", c.Node.Name)
	}
	if c.Hz != 30 {
		t.Fatalf("Hz = %d, want 30", c.Hz)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load(missing explicit file) succeeded")
	}

	t.Setenv("MESHUI_CONFIG_PATH", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v, want defaults", err)
	}
	if c.Node.Freq != Default().Node.Freq {
		t.Fatalf("Freq = %v, want default", c.Node.Freq)
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load(writeConfig(t, "hz: 0\n")); err == nil {
		t.Fatal("Load accepted hz 0")
	}
}
