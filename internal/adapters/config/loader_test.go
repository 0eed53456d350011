package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/adapters/config"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Full(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
data_root: /srv/wisp
portable: true
cache:
  max_memory: 64MiB
  sliding_window: 30m
  poll_interval: 1m
  shards: 8
log:
  json: true
  level: debug
`)

	cfg, err := newLoader(t).Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, domain.AppConfig{
		DataRoot: "/srv/wisp",
		Portable: true,
		Cache: domain.CacheConfig{
			MaxBytes:      64 * 1024 * 1024,
			SlidingWindow: 30 * time.Minute,
			PollInterval:  time.Minute,
			Shards:        8,
		},
		Log: domain.LogConfig{JSON: true, Level: slog.LevelDebug},
	}, cfg)
}

func TestLoader_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cache:\n  max_memory: 30MB\n")

	cfg, err := newLoader(t).Load(path, false)
	require.NoError(t, err)

	want := domain.DefaultAppConfig()
	want.Cache.MaxBytes = 30 * 1000 * 1000
	assert.Equal(t, want, cfg)
}

func TestLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := newLoader(t).Load(writeConfig(t, ""), false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestLoader_ZeroBudgetAndPoll(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cache:\n  max_memory: \"0\"\n  poll_interval: 0s\n")

	cfg, err := newLoader(t).Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Cache.MaxBytes)
	assert.Equal(t, time.Duration(0), cfg.Cache.PollInterval)
}

func TestLoader_Missing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := newLoader(t).Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)

	_, err = newLoader(t).Load(missing, false)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed yaml", content: "cache: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "cache:\n  max_entries: 10\n", wantErr: domain.ErrConfigParseFailed},
		{name: "bad size", content: "cache:\n  max_memory: lots\n", wantErr: domain.ErrConfigInvalid},
		{name: "bad duration", content: "cache:\n  sliding_window: soon\n", wantErr: domain.ErrConfigInvalid},
		{name: "zero window", content: "cache:\n  sliding_window: 0s\n", wantErr: domain.ErrConfigInvalid},
		{name: "negative poll", content: "cache:\n  poll_interval: -1m\n", wantErr: domain.ErrConfigInvalid},
		{name: "zero shards", content: "cache:\n  shards: 0\n", wantErr: domain.ErrConfigInvalid},
		{name: "bad level", content: "log:\n  level: loud\n", wantErr: domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newLoader(t).Load(writeConfig(t, tt.content), false)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		got, err := config.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := config.ParseLevel("verbose")
	require.Error(t, err)
}
