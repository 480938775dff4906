// Package processor runs one search: loads the file, picks the matcher, prints the result
package processor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
)

type Processor struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) Processor {
	return Processor{log: log}
}

// Run prints every matching line of cfg.Path() to out, one per line.
// No matches is not an error.
func (p Processor) Run(cfg model.Config, out io.Writer) (*model.Result, error) {
	body, err := reader.ReadInput(cfg.Path())
	if err != nil {
		return nil, err
	}
	p.log.Debug().Str("path", cfg.Path()).Int("bytes", len(body)).Msg("file loaded")

	result := model.Result{
		Lines: findMatchingLines(cfg, body),
	}

	if err := printLines(out, result.Lines); err != nil {
		return nil, err
	}

	// считаем общий хеш
	result.HashSumm = hasher(result.Lines)

	p.log.Debug().
		Bool("case_insensitive", cfg.CaseInsensitive()).
		Int("matches", len(result.Lines)).
		Str("hash", fmt.Sprintf("%016x", result.HashSumm)).
		Msg("search finished")

	return &result, nil
}

func findMatchingLines(cfg model.Config, body string) []string {
	if cfg.CaseInsensitive() { // CASE_INSENSITIVE
		return matcher.SearchCaseInsensitive(cfg.Query(), body)
	}
	return matcher.Search(cfg.Query(), body)
}

func printLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// хеш совпадает с xxhash того, что ушло в out
func hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
