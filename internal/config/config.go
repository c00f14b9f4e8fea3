// Package config holds runtime configuration: environment-seeded defaults,
// CLI flag parsing, and validation.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// GroupSize is the number of conversions admitted into one batch. Batches
// run strictly one after another; within a batch, files convert
// concurrently. Not exposed as a flag.
const GroupSize = 10

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when the stream is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (required flags).
	InputDir  string
	OutputDir string

	// Display and logging. These shape diagnostics only and never affect
	// conversion results.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config seeded from the environment:
//
//	EPUB2JSON_LOG_LEVEL   "debug" enables verbose output (default "info")
//	EPUB2JSON_LOG_FILE    log file path (default none)
//	EPUB2JSON_NO_COLOR    disables colored logs when truthy
//
// Explicit flags parsed afterwards override anything set here.
func DefaultConfig() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("epub2json_log_level", "info")
	v.SetDefault("epub2json_log_file", "")
	v.SetDefault("epub2json_no_color", false)

	cfg := Config{ColorMode: ColorAuto}
	if strings.EqualFold(v.GetString("EPUB2JSON_LOG_LEVEL"), "debug") {
		cfg.Verbose = true
	}
	cfg.LogFile = v.GetString("EPUB2JSON_LOG_FILE")
	if v.GetBool("EPUB2JSON_NO_COLOR") {
		cfg.ColorMode = ColorNever
	}
	return cfg
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the color mode holds a valid value and that both
// directory paths were supplied. It does not touch the filesystem; directory
// usability is checked separately before the run starts.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.InputDir == "" {
		return errors.New("input directory is required (-i <dir>)")
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required (-o <dir>)")
	}
	return nil
}
