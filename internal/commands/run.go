//go:build !tinygo

package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"meshui/app"
	"meshui/config"
	"meshui/hal"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	headless   bool
	fast       bool
	hz         int
	ticks      uint64
	logLevel   string
}

func addRun(topLevel *cobra.Command) {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: base.Wrap80("Run the status UI on a simulated 240x135 panel, in a window or headless."),
		Example: `
meshui run
meshui run --headless --ticks 600 --log-level debug
meshui run --config ~/meshui.yaml
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(ro.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("hz") {
				cfg.Hz = ro.hz
			}
			if flags.Changed("ticks") {
				cfg.Ticks = ro.ticks
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = ro.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return ro.run(cmd.Context(), cfg, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&ro.configPath, "config", "c", "", "Config file (default ./meshui.yaml).")
	cmd.Flags().BoolVar(&ro.headless, "headless", false, "Run without a window.")
	cmd.Flags().BoolVar(&ro.fast, "fast", false, "Headless only: run on simulated time as fast as possible.")
	cmd.Flags().IntVar(&ro.hz, "hz", 60, "Tick rate in headless mode.")
	cmd.Flags().Uint64Var(&ro.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	cmd.Flags().StringVar(&ro.logLevel, "log-level", "info", "One of debug, info, warn, error.")

	topLevel.AddCommand(cmd)
}

func (ro *runOptions) run(ctx context.Context, cfg config.Config, logOut io.Writer) error {
	h := hal.NewHost(hostOptions(cfg, logOut))
	newApp := func(hh hal.HAL) func() error { return app.New(hh, cfg) }

	if !ro.headless {
		return hal.RunWindow(h, newApp)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	err := hal.RunHeadless(ctx, h, newApp, hal.HeadlessConfig{
		Hz:    cfg.Hz,
		Ticks: cfg.Ticks,
		Fast:  ro.fast,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func hostOptions(cfg config.Config, logOut io.Writer) hal.HostOptions {
	opts := hal.HostOptions{
		PanelWidth:        cfg.Panel.PhysicalWidth,
		PanelHeight:       cfg.Panel.PhysicalHeight,
		BatteryMilliVolts: cfg.Sim.BatteryMilliVolts,
		ButtonPeriod:      cfg.Sim.ButtonPeriod,
		ButtonHold:        cfg.Sim.ButtonHold,
		Log:               logOut,
	}
	if g := cfg.Sim.GPS; g.Present {
		opts.Location = &hal.SimLocation{
			Fix:      true,
			Position: g.Fix,
			Lat:      g.Lat,
			Lon:      g.Lon,
			Alt:      g.Alt,
			Sats:     g.Sats,
		}
	}
	return opts
}
