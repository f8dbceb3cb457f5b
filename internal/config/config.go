// Package config holds the startup options. Everything here is read once
// before the window opens and never changes afterward.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Options is the flat set of startup options.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	WindowWidth  int
	WindowHeight int
	HistorySize  int
	Background   uint32 // 0xRRGGBBAA
	SavePath     string
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		CanvasWidth:  2560,
		CanvasHeight: 1440,
		WindowWidth:  800,
		WindowHeight: 600,
		HistorySize:  16,
		Background:   0x111600FF,
		SavePath:     "beak.png",
	}
}

// Validate checks the numeric options and returns a descriptive error for
// the first invalid one.
func (o *Options) Validate() error {
	switch {
	case o.CanvasWidth <= 0 || o.CanvasHeight <= 0:
		return fmt.Errorf("canvas size %dx%d is not positive", o.CanvasWidth, o.CanvasHeight)
	case o.WindowWidth <= 0 || o.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d is not positive", o.WindowWidth, o.WindowHeight)
	case o.HistorySize <= 0:
		return fmt.Errorf("undo log size %d is not positive", o.HistorySize)
	case o.SavePath == "":
		return fmt.Errorf("save path is empty")
	}
	return nil
}

// ParseHexColor parses a 0xRRGGBBAA color value, with or without the 0x
// prefix.
func ParseHexColor(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: expected 0xRRGGBBAA", s)
	}
	return uint32(v), nil
}
