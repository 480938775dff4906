// Package logger builds the zerolog logger, optionally backed by a rotating file
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to stderr, or to lp.File with rotation when set.
// The returned cleanup closes the file sink.
func New(lp model.LogParam, stderr io.Writer) (zerolog.Logger, func() error, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(lp.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	var w io.Writer
	cleanup := func() error { return nil }

	switch lp.File {
	case "":
		w = zerolog.ConsoleWriter{Out: stderr, NoColor: true}
	default:
		if err := os.MkdirAll(filepath.Dir(lp.File), 0o755); err != nil {
			return zerolog.Nop(), cleanup, err
		}
		lj := &lumberjack.Logger{
			Filename:   lp.File,
			MaxSize:    lp.MaxSizeMB,
			MaxBackups: lp.MaxBackups,
			MaxAge:     lp.MaxAgeDays,
			LocalTime:  true,
		}
		w = lj
		cleanup = lj.Close
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Str("component", "minigrep").Logger()
	return log, cleanup, nil
}
