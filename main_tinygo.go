//go:build tinygo

package main

import (
	"meshui/app"
	"meshui/config"
	"meshui/hal"
)

func main() {
	app.Run(hal.New(), config.Default())
}
