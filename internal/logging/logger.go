// Package logging constructs the process-wide logger.
//
// Console output goes to stderr so converted-document listings and shell
// pipelines on stdout stay clean. When a log file is configured the same
// events are appended there as plain JSON lines.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jdillick/epub2json/internal/config"
	"github.com/jdillick/epub2json/internal/term"
)

// Logger wraps a zerolog.Logger together with the optional file sink so the
// caller can close it on shutdown.
type Logger struct {
	zerolog.Logger

	file *os.File
}

// NewLogger builds the root logger from cfg: a console writer on stderr
// (colored per cfg.ColorMode) and, when cfg.LogFile is set, a JSON sink
// appended to that file. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !term.Enabled(cfg.ColorMode, os.Stderr),
	}

	l := &Logger{}
	var sink io.Writer = console
	if cfg.LogFile != "" {
		if dir := filepath.Dir(cfg.LogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		sink = zerolog.MultiLevelWriter(console, f)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	l.Logger = zerolog.New(sink).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close closes the log file if one was opened. Idempotent.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
