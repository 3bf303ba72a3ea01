package ui

import (
	"fmt"
	"strconv"

	"meshui/display"
)

const (
	batteryIconWidth  = 18
	batteryIconHeight = 9
	dotSize           = 3
	dotSpacing        = 6
)

func (c *Controller) render(now uint64) {
	switch {
	case c.preview.Active():
		c.renderPreview()
	case now-c.bootAt < bootScreenMillis:
		c.renderBoot()
	default:
		c.renderHome()
	}
	c.needRefresh = false
}

func (c *Controller) renderPreview() {
	d := c.display
	d.SetCursor(0, 0)
	d.SetTextSize(1)
	d.SetColor(display.Green)
	d.Print(c.nodeName())

	d.SetCursor(0, 12)
	d.SetColor(display.Yellow)
	d.Print(c.preview.Origin)
	d.SetCursor(0, 24)
	d.SetColor(display.Light)
	d.Print(c.preview.Body)

	d.SetCursor(d.Width()-28, 9)
	d.SetTextSize(2)
	d.SetColor(display.Orange)
	d.Print(strconv.Itoa(c.unread))
	// Monochrome panels carry the last color into the next frame.
	d.SetColor(display.Yellow)
}

func (c *Controller) renderBoot() {
	d := c.display
	d.SetColor(display.Blue)
	d.DrawBitmap((d.Width()-logoWidth)/2, 3, logo[:], logoWidth, logoHeight)

	d.SetColor(display.Light)
	d.SetTextSize(1)
	w := d.TextWidth(c.banner)
	d.SetCursor((d.Width()-w)/2, 22)
	d.Print(c.banner)
}

func (c *Controller) renderHome() {
	c.renderHeader()

	switch c.currentPage {
	case 1:
		if c.hasLocation() {
			c.renderLocationPage()
			break
		}
		c.currentPage = 0
		c.renderRadioPage()
	default:
		c.currentPage = 0
		c.renderRadioPage()
	}

	if c.connected {
		c.display.SetColor(display.Light)
	} else {
		c.display.SetColor(display.Green)
	}
}

func (c *Controller) renderHeader() {
	d := c.display
	d.SetCursor(0, 0)
	d.SetTextSize(1)
	d.SetColor(display.Green)
	d.Print(c.nodeName())

	if c.board != nil {
		c.renderBattery(BatteryPercent(c.board.BatteryMilliVolts()))
	}

	if c.totalPages <= 1 {
		return
	}
	totalWidth := c.totalPages*dotSize + (c.totalPages-1)*dotSpacing
	startX := d.Width() - totalWidth - 5
	y := d.Height() - 5
	for i := 0; i < c.totalPages; i++ {
		x := startX + i*(dotSize+dotSpacing)
		if i == c.currentPage {
			d.SetColor(display.Green)
			d.FillRect(x, y, dotSize, dotSize)
		} else {
			d.SetColor(display.Light)
			d.DrawRect(x, y, dotSize, dotSize)
		}
	}
}

func (c *Controller) renderBattery(pct int) {
	d := c.display
	x := d.Width() - batteryIconWidth - 5
	y := 1
	d.SetColor(display.Green)
	d.DrawRect(x, y, batteryIconWidth, batteryIconHeight)
	// cap
	d.FillRect(x+batteryIconWidth, y+2, 2, batteryIconHeight-4)

	fill := pct * (batteryIconWidth - 2) / 100
	if fill > 0 {
		d.FillRect(x+1, y+1, fill, batteryIconHeight-2)
	}
}

func (c *Controller) renderRadioPage() {
	d := c.display
	d.SetCursor(0, 16)
	d.SetColor(display.Yellow)
	if c.prefs != nil {
		d.Print(fmt.Sprintf("FREQ: %06.3f SF%d", c.prefs.Freq(), c.prefs.SF()))
		d.SetCursor(0, 26)
		d.Print(fmt.Sprintf("BW: %03.2f CR: %d", c.prefs.BW(), c.prefs.CR()))
	}

	if !c.connected && c.pin != 0 {
		d.SetColor(display.Red)
		d.SetTextSize(2)
		d.SetCursor(0, 43)
		d.Print("Pin:" + strconv.FormatUint(uint64(c.pin), 10))
		d.SetColor(display.Green)
		d.SetTextSize(1)
	}
}

func (c *Controller) renderLocationPage() {
	d := c.display
	s := c.sensors
	d.SetCursor(0, 16)
	d.SetTextSize(1)
	d.SetColor(display.Yellow)

	if s.Valid() {
		d.Print(fmt.Sprintf("LAT: %.6f", s.Latitude()))
		d.SetCursor(0, 26)
		d.Print(fmt.Sprintf("LON: %.6f", s.Longitude()))

		d.SetCursor(0, 36)
		d.SetColor(display.Light)
		d.Print(fmt.Sprintf("ALT: %.1fm", s.Altitude()))
		d.SetCursor(0, 46)
		d.Print("SATS: " + strconv.Itoa(s.Satellites()))
		return
	}

	d.Print("GPS: No Fix")
	d.SetCursor(0, 26)
	d.SetColor(display.Red)
	d.Print("Searching...")
	d.SetCursor(0, 36)
	d.SetColor(display.Light)
	d.Print("SATS: " + strconv.Itoa(s.Satellites()))
}

func (c *Controller) nodeName() string {
	if c.prefs == nil {
		return ""
	}
	return c.prefs.NodeName()
}
