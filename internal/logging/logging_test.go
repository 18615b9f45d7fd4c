package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"DEBUG":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"":         zerolog.InfoLevel,
		"WARNING":  zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		"CRITICAL": zerolog.FatalLevel,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("TRACE")
	assert.Error(t, err)
}

func TestNew_ConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closeFn, err := New(Options{Level: "INFO", File: path, Console: &console})
	require.NoError(t, err)

	logger.Debug().Msg("Hidden detail")
	logger.Info().Str("file", "doc.txt").Msg("Reading input file")
	require.NoError(t, closeFn())

	assert.Contains(t, console.String(), "Reading input file")
	assert.NotContains(t, console.String(), "Hidden detail")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Reading input file")
	assert.Contains(t, string(data), "file=doc.txt")
	assert.Contains(t, string(data), "run=")
	assert.NotContains(t, string(data), "\x1b[", "log file must not contain color codes")
}

func TestNew_ThresholdFiltersLowerSeverities(t *testing.T) {
	var console bytes.Buffer
	logger, closeFn, err := New(Options{Level: "ERROR", Console: &console})
	require.NoError(t, err)
	defer closeFn()

	logger.Warn().Msg("Unrecognised language")
	logger.Error().Msg("Run failed")

	assert.NotContains(t, console.String(), "Unrecognised language")
	assert.Contains(t, console.String(), "Run failed")
}

func TestNew_BadLogPath(t *testing.T) {
	_, _, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "run.log"), Console: &bytes.Buffer{}})
	assert.Error(t, err)
}
