package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"meshui/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// guard runs step, turning a panic into an error after reporting it on the
// log and, when there is one, the panel.
func guard(log *slog.Logger, p hal.Panel, step func() error) func() error {
	return func() (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err = fmt.Errorf("app: panic: %v", r)
			stack := string(debug.Stack())
			log.Error("app:panic", slog.Any("value", r), slog.String("stack", stack))
			if p != nil {
				showPanic(p, err.Error(), stack)
			}
		}()
		return step()
	}
}

func showPanic(p hal.Panel, msg, stack string) {
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	charW := int16(outbox)
	lineH := int16(font.GetYAdvance())
	w, h := p.Size()
	if charW <= 0 || lineH <= 0 {
		return
	}

	_ = p.SetPower(true)
	_ = p.FillRectangle(0, 0, w, h, color.RGBA{R: 0x80, A: 0xFF})

	lines := []string{"Panic:", msg}
	for _, line := range strings.Split(stack, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cols := w / charW
	if cols <= 0 {
		cols = 1
	}
	y := lineH
	for _, line := range lines {
		for len(line) > 0 {
			if y > h {
				_ = p.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(p, font, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = p.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
