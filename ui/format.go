package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// Byte capacities of the preview lines.
	maxOrigin = 61
	maxBody   = 79

	// FloodHops is the hop count of a message delivered by flood routing.
	FloodHops uint8 = 0xFF

	minBatteryMilliVolts = 3000
	maxBatteryMilliVolts = 4200
)

// Preview is the message currently shown instead of the home pages.
type Preview struct {
	Origin string
	Body   string
}

// Active reports whether the preview has anything to show.
func (p Preview) Active() bool {
	return p.Origin != "" || p.Body != ""
}

// VersionBanner builds the boot-screen line, dropping any "-suffix" from
// the version: "v1.2.3-abcdef", "1 Jan 2025" -> "v1.2.3 (1 Jan 2025)".
func VersionBanner(version, buildDate string) string {
	if i := strings.IndexByte(version, '-'); i >= 0 {
		version = version[:i]
	}
	return version + " (" + buildDate + ")"
}

// OriginLabel formats the sender line of a preview.
func OriginLabel(hops uint8, from string) string {
	var b []byte
	if hops == FloodHops {
		b = append(b, "(F) "...)
	} else {
		b = append(b, '(')
		b = strconv.AppendUint(b, uint64(hops), 10)
		b = append(b, ") "...)
	}
	b = append(b, from...)
	return truncate(string(b), maxOrigin)
}

// BatteryPercent maps a cell voltage onto 0..100, linear from 3.0 V to 4.2 V.
func BatteryPercent(milliVolts int) int {
	d := milliVolts - minBatteryMilliVolts
	if d <= 0 {
		return 0
	}
	span := maxBatteryMilliVolts - minBatteryMilliVolts
	pct := (d*100 + span/2) / span
	if pct > 100 {
		return 100
	}
	return pct
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
