package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "linkrouter", "linkrouter.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.FromSlash("/custom/state/linkrouter/linkrouter.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := filepath.ToSlash(getLogFilePath())
		assert.Contains(t, got, ".local/state/linkrouter/linkrouter.log")
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("matcher")
	logger.Info().Msg("compiled")

	assert.Contains(t, buf.String(), `"component":"matcher"`)
	assert.Contains(t, buf.String(), "compiled")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogCommand("xdg-open", []string{"https://example.com"})

	output := buf.String()
	assert.Contains(t, output, "xdg-open")
	assert.Contains(t, output, "https://example.com")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "route")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
