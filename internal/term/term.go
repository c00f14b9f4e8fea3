// Package term provides terminal detection and ANSI color resolution.
//
// The logger and the banner write to different streams, so callers pass the
// stream they are about to write to and get back whether colors are safe on
// it. Resolution honors NO_COLOR (https://no-color.org) and dumb terminals.
package term

import (
	"os"
	"strings"

	"github.com/jdillick/epub2json/internal/config"
)

// Enabled reports whether ANSI colors should be used when writing to f,
// given the configured mode. ColorAlways and ColorNever short-circuit;
// ColorAuto requires f to be a TTY with NO_COLOR unset and TERM not "dumb".
func Enabled(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
