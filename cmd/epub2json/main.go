// Command epub2json is the CLI entrypoint for the epub2json batch converter.
//
// It dispatches the convert subcommand, validates configuration and paths,
// and runs the EPUB to JSON conversion pipeline over an input directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/jdillick/epub2json/internal/archive"
	"github.com/jdillick/epub2json/internal/config"
	"github.com/jdillick/epub2json/internal/display"
	"github.com/jdillick/epub2json/internal/logging"
	"github.com/jdillick/epub2json/internal/pathcheck"
	"github.com/jdillick/epub2json/internal/pipeline"
	"github.com/jdillick/epub2json/internal/term"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A .env next to the binary is optional; absence is not an error.
	_ = godotenv.Load()

	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "convert":
		return runConvert(args[1:])
	case "version", "--version", "-V":
		fmt.Printf("epub2json v%s (%s)\n", version, commit)
		return 0
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "epub2json: unknown command %q\n\n", args[0])
		printUsage()
		return 1
	}
}

func runConvert(args []string) int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "epub2json: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "epub2json: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'epub2json convert --help' for usage.")
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "epub2json: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner(term.Enabled(cfg.ColorMode, os.Stdout))

	// Validate paths before any work: input must exist and be readable,
	// output must exist and be writable. Neither directory is created on
	// the caller's behalf, so a typo fails here instead of producing an
	// empty results tree somewhere unexpected.
	if err := pathcheck.Validate(cfg.InputDir, pathcheck.AccessRead); err != nil {
		log.Error().Err(err).Msg("Input directory rejected")
		return 1
	}
	if err := pathcheck.Validate(cfg.OutputDir, pathcheck.AccessWrite); err != nil {
		log.Error().Err(err).Msg("Output directory rejected")
		return 1
	}

	runLog := log.With().Str("run", uuid.NewString()[:8]).Logger()
	runLog.Info().
		Str("version", version).
		Str("in", cfg.InputDir).
		Str("out", cfg.OutputDir).
		Msg("epub2json starting")

	// Phase 3: Run the pipeline. Per-file failures are diagnosed and
	// counted inside it; only the validation above decides the exit status.
	pipeline.Run(context.Background(), &cfg, runLog, archive.NewEPUBReader())
	return 0
}

// printUsage writes the top-level command list to stderr. Per-command help
// lives with each subcommand's flag parsing.
func printUsage() {
	const col1 = 14
	lines := []struct {
		name string
		desc string
	}{
		{"", "epub2json converts directories of EPUB archives into JSON documents."},
		{"", ""},
		{"", "Usage: epub2json <command> [options]"},
		{"", ""},
		{"Commands", ""},
		{"  convert", "Convert every .epub in a directory (see 'convert --help')"},
		{"  version", "Print version and exit"},
		{"  help", "Show this help"},
	}

	for _, l := range lines {
		if l.name == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.name == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.name)
			continue
		}
		padding := col1 - len(l.name)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.name, padding, "", l.desc)
	}
}
