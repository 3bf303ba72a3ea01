//go:build !tinygo

// Package commands is the host CLI.
package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

// New returns the meshui root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "meshui",
		Short:         base.Wrap80("Status screen simulator for a handheld mesh radio."),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRun(topLevel)
	addVersion(topLevel)
}
