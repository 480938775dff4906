package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"upper case", "INFO", zerolog.InfoLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"empty defaults to warn", "", zerolog.WarnLevel},
		{"invalid defaults to warn", "invalid", zerolog.WarnLevel},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			log, cleanup, err := logger.New(model.LogParam{Level: tt.level}, &bytes.Buffer{})
			require.NoError(t, err)
			require.NoError(t, cleanup())
			require.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNewStderr(t *testing.T) {
	var buf bytes.Buffer
	log, cleanup, err := logger.New(model.LogParam{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer cleanup()

	log.Info().Msg("hidden")
	log.Warn().Str("path", "poem.txt").Msg("visible")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "visible")
	require.Contains(t, buf.String(), "path=poem.txt")
}

func TestNewFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "minigrep.log")
	var stderr bytes.Buffer

	log, cleanup, err := logger.New(model.LogParam{
		Level:      "info",
		File:       file,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}, &stderr)
	require.NoError(t, err)

	log.Info().Msg("to file")
	require.NoError(t, cleanup())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"message":"to file"`)
	require.Contains(t, string(raw), `"component":"minigrep"`)
	require.Empty(t, stderr.String())
}
