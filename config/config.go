// Package config holds the node settings shown on the home page and the
// host simulator's knobs.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Overridden at link time on boards without a config file:
//
//	-ldflags "-X meshui/config.NodeName=Base -X meshui/config.PIN=123456"
var (
	NodeName = "MeshCore"
	PIN      = ""
)

// Config is the full runtime configuration.
type Config struct {
	Node  Node   `mapstructure:"node"`
	Panel Panel  `mapstructure:"panel"`
	Sim   Sim    `mapstructure:"sim"`
	Log   Log    `mapstructure:"log"`
	Hz    int    `mapstructure:"hz"`
	Ticks uint64 `mapstructure:"ticks"`
}

// Node is the radio configuration.
type Node struct {
	Name string  `mapstructure:"name"`
	Freq float64 `mapstructure:"freq"` // MHz
	SF   int     `mapstructure:"sf"`
	BW   float64 `mapstructure:"bw"` // kHz
	CR   int     `mapstructure:"cr"`
	// PIN is the BLE pairing PIN, 0 for none.
	PIN uint32 `mapstructure:"pin"`
}

// Panel describes the logical canvas and the physical panel under it.
type Panel struct {
	Width          int   `mapstructure:"width"`
	Height         int   `mapstructure:"height"`
	PhysicalWidth  int   `mapstructure:"physical_width"`
	PhysicalHeight int   `mapstructure:"physical_height"`
	OffsetX        int16 `mapstructure:"offset_x"`
	OffsetY        int16 `mapstructure:"offset_y"`
}

// Sim drives the host simulator.
type Sim struct {
	BatteryMilliVolts int          `mapstructure:"battery_mv"`
	Connected         bool         `mapstructure:"connected"`
	GPS               GPS          `mapstructure:"gps"`
	Messages          []SimMessage `mapstructure:"messages"`
	// ButtonPeriod > 0 presses the button on a schedule instead of
	// reading the keyboard.
	ButtonPeriod time.Duration `mapstructure:"button_period"`
	ButtonHold   time.Duration `mapstructure:"button_hold"`
}

// GPS is a fixed simulated reading.
type GPS struct {
	Present bool    `mapstructure:"present"`
	Fix     bool    `mapstructure:"fix"`
	Lat     float64 `mapstructure:"lat"`
	Lon     float64 `mapstructure:"lon"`
	Alt     float64 `mapstructure:"alt"`
	Sats    int     `mapstructure:"sats"`
}

// SimMessage is delivered to the UI once the clock reaches AtMillis and
// marked read at ReadAtMillis. A zero ReadAtMillis leaves it unread.
type SimMessage struct {
	AtMillis     uint64 `mapstructure:"at_ms"`
	ReadAtMillis uint64 `mapstructure:"read_at_ms"`
	Hops         uint8  `mapstructure:"hops"`
	From         string `mapstructure:"from"`
	Text         string `mapstructure:"text"`
}

// Log selects the slog level by name.
type Log struct {
	Level string `mapstructure:"level"`
}

// SlogLevel parses Level, falling back to Info.
func (l Log) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Validate rejects settings the UI cannot run with.
func (c Config) Validate() error {
	if c.Hz <= 0 {
		return fmt.Errorf("config: hz must be positive, got %d", c.Hz)
	}
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return fmt.Errorf("config: panel: invalid logical size %dx%d", c.Panel.Width, c.Panel.Height)
	}
	if c.Panel.PhysicalWidth < c.Panel.Width || c.Panel.PhysicalHeight < c.Panel.Height {
		return fmt.Errorf("config: panel: physical %dx%d smaller than logical %dx%d",
			c.Panel.PhysicalWidth, c.Panel.PhysicalHeight, c.Panel.Width, c.Panel.Height)
	}
	for i, m := range c.Sim.Messages {
		if m.From == "" && m.Text == "" {
			return fmt.Errorf("config: sim: message %d is empty", i)
		}
		if m.ReadAtMillis != 0 && m.ReadAtMillis < m.AtMillis {
			return fmt.Errorf("config: sim: message %d read at %d ms before it arrives at %d ms", i, m.ReadAtMillis, m.AtMillis)
		}
	}
	return nil
}

// Default returns EU narrowband MeshCore settings on a 240x135 panel.
func Default() Config {
	pin, _ := strconv.ParseUint(PIN, 10, 32)
	return Config{
		Node: Node{
			Name: NodeName,
			Freq: 869.525,
			SF:   11,
			BW:   250,
			CR:   5,
			PIN:  uint32(pin),
		},
		Panel: Panel{
			Width:          128,
			Height:         64,
			PhysicalWidth:  240,
			PhysicalHeight: 135,
			OffsetX:        0,
			OffsetY:        1,
		},
		Sim: Sim{
			BatteryMilliVolts: 3900,
			ButtonHold:        150 * time.Millisecond,
		},
		Log: Log{Level: "info"},
		Hz:  60,
	}
}

// NodePrefs exposes Node as the UI's read-only preferences.
type NodePrefs struct {
	N Node
}

func (p NodePrefs) NodeName() string { return p.N.Name }
func (p NodePrefs) Freq() float64    { return p.N.Freq }
func (p NodePrefs) SF() int          { return p.N.SF }
func (p NodePrefs) BW() float64      { return p.N.BW }
func (p NodePrefs) CR() int          { return p.N.CR }
