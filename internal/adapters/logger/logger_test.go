package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/adapters/logger"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("settings saved") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("settings were reset") },
			goldenName: "warn_basic",
		},
		{
			name:       "debug filtered at info",
			log:        func(l *logger.Logger) { l.Debug("cache miss") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug enabled",
			log: func(l *logger.Logger) {
				l.SetLevel(slog.LevelDebug)
				l.Debug("cache miss")
			},
			goldenName: "debug_enabled",
		},
		{
			name: "warn suppressed at error level",
			log: func(l *logger.Logger) {
				l.SetLevel(slog.LevelError)
				l.Warn("ignored")
				l.Info("ignored")
			},
			goldenName: "debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("unexpected end of JSON input"), domain.ErrStoreCorrupt.Error()),
				"path", "/data/Settings/Settings.json",
			),
			goldenName: "error_chain",
		},
		{
			name:       "joined sentinel",
			err:        zerr.With(errors.Join(domain.ErrStoreWriteFailed, errors.New("disk full")), "path", "/data/Settings/Settings.json"),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(domain.ErrUnknownSetting, "key", "colour"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.NotNil(t, record["error"])
}

func TestLogger_JSONKeepsLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetLevel(slog.LevelDebug)
	lg.SetJSON(true)

	lg.Debug("cache miss")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "cache miss", record["msg"])
}
