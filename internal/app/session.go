package app

import (
	"errors"
	"log/slog"
	"sync"

	"go.trai.ch/wisp/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/paths"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/translit" //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/wisp/internal/engine/matcher"
)

// session holds the components built from the loaded configuration for a
// single command invocation.
type session struct {
	app      *App
	cfg      domain.AppConfig
	store    ports.SettingsStore
	cache    *translit.Cache
	alphabet *translit.Alphabet
	matcher  *matcher.Matcher

	mu       sync.RWMutex
	settings domain.Settings
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

func (a *App) open(opts Options) (*session, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if err := a.configureLogger(opts, cfg); err != nil {
		return nil, err
	}

	override := opts.DataRoot
	if override == "" {
		override = cfg.DataRoot
	}
	root, err := a.locator.DataRoot(opts.Portable || cfg.Portable, override)
	if err != nil {
		return nil, err
	}

	resolver, err := paths.NewResolver(root)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(resolver, domain.SettingsDocument)
	if err != nil {
		return nil, err
	}

	s := &session{
		app:   a,
		cfg:   cfg,
		store: st,
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	s.cache = translit.New(cfg.Cache, a.metrics)
	s.alphabet = translit.NewAlphabet(s.cache, a.converter, s.current)
	s.matcher = matcher.New(s.alphabet)

	return s, nil
}

// loadConfig reads the explicit config file, or the optional one in the
// default data root.
func (a *App) loadConfig(opts Options) (domain.AppConfig, error) {
	if opts.ConfigPath != "" {
		return a.configLoader.Load(opts.ConfigPath, false)
	}

	root, err := a.locator.DataRoot(opts.Portable, opts.DataRoot)
	if err != nil {
		return domain.AppConfig{}, err
	}
	return a.configLoader.Load(domain.DefaultConfigPath(root), true)
}

func (a *App) configureLogger(opts Options, cfg domain.AppConfig) error {
	level := cfg.Log.Level
	if opts.LogLevel != "" {
		parsed, err := config.ParseLevel(opts.LogLevel)
		if err != nil {
			return err
		}
		level = parsed
	}

	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(opts.JSON || cfg.Log.JSON)
		l.SetLevel(level)
	}
	return nil
}

// load reads the settings document. A corrupt document is reported as a
// warning and replaced by the defaults.
func (s *session) load() error {
	settings, err := s.store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrStoreCorrupt) {
			return err
		}
		s.app.logger.Warn(s.app.translator.Translate(settings.Language, "settings_recovered"))
		s.app.logger.Debug(err.Error())
	}

	s.mu.Lock()
	s.settings = settings.Normalize()
	s.mu.Unlock()
	return nil
}

// reload refreshes the settings after an external change. Failures keep the
// previous settings in effect.
func (s *session) reload() {
	if err := s.load(); err != nil {
		s.app.logger.Error(err)
	}
}

func (s *session) current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *session) close() {
	_ = s.cache.Close()
}
