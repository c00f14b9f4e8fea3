// Package pipeline orchestrates archive discovery, grouped concurrent
// conversion, and batch summary reporting.
//
// The scheduler admits files in fixed groups of config.GroupSize. A group's
// conversions run concurrently; the next group starts only after every
// conversion in the current one has settled. Once admitted, a conversion
// runs to completion and reports success or failure exactly once; there is
// no retry and no per-file timeout.
package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jdillick/epub2json/internal/archive"
	"github.com/jdillick/epub2json/internal/book"
	"github.com/jdillick/epub2json/internal/config"
	"github.com/jdillick/epub2json/internal/display"
	"github.com/jdillick/epub2json/internal/output"
)

// Run is the top-level batch entry point: discover archives, convert them
// group by group, and return aggregate counters. Per-file failures are
// logged and counted, never propagated; a discovery failure returns an
// all-zero summary.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger, reader archive.Reader) RunSummary {
	var sum RunSummary
	start := time.Now()

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error().Err(err).Str("dir", cfg.InputDir).Msg("File discovery failed")
		sum.Elapsed = time.Since(start)
		return sum
	}

	groups := (len(files) + config.GroupSize - 1) / config.GroupSize
	log.Info().
		Int("files", len(files)).
		Int("groups", groups).
		Int("group_size", config.GroupSize).
		Msg("Starting conversion")

	asm := book.NewAssembler(reader, log)
	wr := output.NewWriter(log)

	var mu sync.Mutex
	for gi := 0; gi < len(files); gi += config.GroupSize {
		end := gi + config.GroupSize
		if end > len(files) {
			end = len(files)
		}

		// Settle barrier: every conversion in the group finishes before
		// the next group is admitted.
		var wg sync.WaitGroup
		for _, path := range files[gi:end] {
			wg.Add(1)
			go func() {
				defer wg.Done()
				convertOne(ctx, asm, wr, cfg.OutputDir, path, log, &sum, &mu)
			}()
		}
		wg.Wait()

		log.Info().
			Int("group", gi/config.GroupSize+1).
			Int("groups", groups).
			Int("settled", end).
			Msg("Group settled")
	}

	sum.Elapsed = time.Since(start)
	logSummary(log, &sum)
	return sum
}

// convertOne handles one archive: assemble, write, count. Every failure is
// absorbed here with a diagnostic; the batch never stops for one file.
func convertOne(
	ctx context.Context,
	asm *book.Assembler,
	wr *output.Writer,
	outputDir, path string,
	log zerolog.Logger,
	sum *RunSummary,
	mu *sync.Mutex,
) {
	l := log.With().
		Str("task", uuid.NewString()[:8]).
		Str("file", filepath.Base(path)).
		Logger()
	l.Debug().Msg("Converting")

	b, err := asm.Assemble(ctx, path)
	if err != nil {
		l.Warn().Err(err).Msg("Conversion failed")
		mu.Lock()
		sum.Attempted++
		sum.Failed++
		mu.Unlock()
		return
	}

	n, err := wr.Write(b, path, outputDir)
	if err != nil {
		l.Warn().Err(err).Msg("Write failed")
		mu.Lock()
		sum.Attempted++
		sum.Failed++
		mu.Unlock()
		return
	}

	mu.Lock()
	sum.Attempted++
	sum.Succeeded++
	sum.Chapters += len(b.ChapterIDs)
	sum.BytesWritten += n
	mu.Unlock()
}

// logSummary reports the aggregate outcome. Individual failures already
// left their diagnostics above; the summary is where the counts meet.
func logSummary(log zerolog.Logger, s *RunSummary) {
	level := zerolog.InfoLevel
	if s.Failed > 0 {
		level = zerolog.WarnLevel
	}
	log.WithLevel(level).
		Int("attempted", s.Attempted).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Int("chapters", s.Chapters).
		Str("written", display.FormatBytes(s.BytesWritten)).
		Str("elapsed", display.FormatDuration(s.Elapsed)).
		Msg("Conversion finished")
}
