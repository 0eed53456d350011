// Package config loads the wisp.yaml process configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads path and returns its values merged over domain.DefaultAppConfig.
func (l *Loader) Load(path string, optional bool) (domain.AppConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no config file at " + path + ", using defaults")
			return domain.DefaultAppConfig(), nil
		}
		return domain.AppConfig{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.AppConfig{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded config from " + path)
	return cfg, nil
}

// Parse decodes a wisp.yaml document. Unknown keys are rejected.
func Parse(data []byte) (domain.AppConfig, error) {
	var file Wispfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.AppConfig{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return file.toDomain()
}

func (f *Wispfile) toDomain() (domain.AppConfig, error) {
	cfg := domain.DefaultAppConfig()

	cfg.DataRoot = strings.TrimSpace(f.DataRoot)
	if f.Portable != nil {
		cfg.Portable = *f.Portable
	}

	if s := strings.TrimSpace(f.Cache.MaxMemory); s != "" {
		n, err := humanize.ParseBytes(s)
		if err != nil {
			return domain.AppConfig{}, invalid(err, "cache.max_memory", s)
		}
		if n > math.MaxInt64 {
			return domain.AppConfig{}, invalid(errors.New("value out of range"), "cache.max_memory", s)
		}
		cfg.Cache.MaxBytes = int64(n)
	}

	window, err := parseDuration(f.Cache.SlidingWindow, cfg.Cache.SlidingWindow, "cache.sliding_window")
	if err != nil {
		return domain.AppConfig{}, err
	}
	if window <= 0 {
		return domain.AppConfig{}, invalid(errors.New("must be positive"), "cache.sliding_window", f.Cache.SlidingWindow)
	}
	cfg.Cache.SlidingWindow = window

	poll, err := parseDuration(f.Cache.PollInterval, cfg.Cache.PollInterval, "cache.poll_interval")
	if err != nil {
		return domain.AppConfig{}, err
	}
	if poll < 0 {
		return domain.AppConfig{}, invalid(errors.New("must not be negative"), "cache.poll_interval", f.Cache.PollInterval)
	}
	cfg.Cache.PollInterval = poll

	if f.Cache.Shards != nil {
		if *f.Cache.Shards < 1 {
			return domain.AppConfig{}, invalid(errors.New("must be at least 1"), "cache.shards", *f.Cache.Shards)
		}
		cfg.Cache.Shards = *f.Cache.Shards
	}

	if f.Log.JSON != nil {
		cfg.Log.JSON = *f.Log.JSON
	}
	if s := strings.TrimSpace(f.Log.Level); s != "" {
		level, err := ParseLevel(s)
		if err != nil {
			return domain.AppConfig{}, err
		}
		cfg.Log.Level = level
	}

	return cfg, nil
}

// ParseLevel parses a log level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, invalid(err, "log.level", s)
	}
	return level, nil
}

func parseDuration(s string, fallback time.Duration, key string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, invalid(err, key, s)
	}
	return d, nil
}

func invalid(cause error, key string, value any) error {
	return zerr.With(zerr.With(zerr.Wrap(cause, domain.ErrConfigInvalid.Error()), "key", key), "value", value)
}
