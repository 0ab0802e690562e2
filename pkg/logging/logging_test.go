package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	tests := []struct {
		name      string
		verbosity int
		want      zerolog.Level
	}{
		{"default is warn", 0, zerolog.WarnLevel},
		{"v is info", 1, zerolog.InfoLevel},
		{"vv is debug", 2, zerolog.DebugLevel},
		{"vvv is trace", 3, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv(paths.EnvStateDir, filepath.Join(stateDir, "nested"))

	logging.SetupLogger(1)

	_, err := os.Stat(paths.LogFilePath())
	require.NoError(t, err)
}

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("rules.table")
	// The component field is attached at creation; logging must not panic.
	logger.Debug().Msg("component logger works")
}
