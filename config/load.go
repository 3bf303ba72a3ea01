//go:build !tinygo

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Load reads meshui.yaml (or the file at path), layering MESHUI_* env vars
// and a local .env over Default. Without an explicit path a missing file
// is not an error.
func Load(path string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigName("meshui") // .yaml is implicit
	v.SetEnvPrefix("MESHUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
		v.SetConfigFile(p)
	} else {
		if override := os.Getenv("MESHUI_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("node.name", d.Node.Name)
	v.SetDefault("node.freq", d.Node.Freq)
	v.SetDefault("node.sf", d.Node.SF)
	v.SetDefault("node.bw", d.Node.BW)
	v.SetDefault("node.cr", d.Node.CR)
	v.SetDefault("node.pin", d.Node.PIN)

	v.SetDefault("panel.width", d.Panel.Width)
	v.SetDefault("panel.height", d.Panel.Height)
	v.SetDefault("panel.physical_width", d.Panel.PhysicalWidth)
	v.SetDefault("panel.physical_height", d.Panel.PhysicalHeight)
	v.SetDefault("panel.offset_x", d.Panel.OffsetX)
	v.SetDefault("panel.offset_y", d.Panel.OffsetY)

	v.SetDefault("sim.battery_mv", d.Sim.BatteryMilliVolts)
	v.SetDefault("sim.connected", d.Sim.Connected)
	v.SetDefault("sim.button_period", d.Sim.ButtonPeriod)
	v.SetDefault("sim.button_hold", d.Sim.ButtonHold)
	v.SetDefault("sim.gps.present", d.Sim.GPS.Present)
	v.SetDefault("sim.gps.fix", d.Sim.GPS.Fix)
	v.SetDefault("sim.gps.lat", d.Sim.GPS.Lat)
	v.SetDefault("sim.gps.lon", d.Sim.GPS.Lon)
	v.SetDefault("sim.gps.alt", d.Sim.GPS.Alt)
	v.SetDefault("sim.gps.sats", d.Sim.GPS.Sats)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("hz", d.Hz)
	v.SetDefault("ticks", d.Ticks)
}
