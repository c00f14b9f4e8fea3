package config

// This file implements CLI flag parsing and help text for the convert
// subcommand. Color flags are captured as plain bools and applied after
// Parse so Config defaults hold unless the user passes them.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses the convert subcommand's arguments into cfg. It returns
// flag.ErrHelp after printing usage when help was requested, and a
// descriptive error for unknown flags or stray positional arguments.
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.Usage = func() { printUsage() }

	var forceColor, noColor bool

	fs.StringVar(&cfg.InputDir, "input", "", "Directory containing .epub files")
	fs.StringVar(&cfg.InputDir, "i", "", "Same as --input")
	fs.StringVar(&cfg.OutputDir, "output", "", "Directory receiving .json documents")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (directories are passed with --input/--output)", fs.Arg(0))
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	return nil
}

// printUsage writes the convert help text to stderr. Column-aligned for readability.
func printUsage() {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Convert a directory of EPUB archives into JSON documents."},
		{"", ""},
		{"  epub2json convert -i <input_dir> -o <output_dir> [options]", ""},
		{"", ""},
		{"Required", ""},
		{"  -i, --input <dir>", "Directory scanned (non-recursively) for .epub files"},
		{"  -o, --output <dir>", "Existing directory receiving one .json per archive"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
