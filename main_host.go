//go:build !tinygo

package main

import (
	"os"

	"meshui/internal/commands"

	"github.com/fatih/color"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
