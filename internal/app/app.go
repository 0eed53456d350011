// Package app implements the application layer for wisp.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/wisp/internal/adapters/i18n"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/adapters/paths"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	converter    ports.Converter
	translator   ports.Translator
	watcher      ports.FileWatcher
	metrics      *metrics.Collector
	locator      paths.Locator
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	converter ports.Converter,
	translator ports.Translator,
	watcher ports.FileWatcher,
	collector *metrics.Collector,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		converter:    converter,
		translator:   translator,
		watcher:      watcher,
		metrics:      collector,
		locator:      paths.OSLocator(),
	}
}

// WithLocator replaces the directories used to resolve the default data root.
// This is primarily used for testing to keep the user profile untouched.
func (a *App) WithLocator(l paths.Locator) *App {
	a.locator = l
	return a
}

// Options are the process-wide settings given on the command line.
type Options struct {
	// ConfigPath points at wisp.yaml. Empty means <data root>/wisp.yaml, which may be absent.
	ConfigPath string
	// DataRoot overrides the data directory.
	DataRoot string
	// Portable keeps data next to the executable.
	Portable bool
	// JSON switches the logger to JSON output.
	JSON bool
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// TranslateOptions configuration for the Translate method.
type TranslateOptions struct {
	NoCache bool
}

// Translate returns the transliteration of every text, in order.
// Texts are returned unchanged while pinyin matching is disabled.
func (a *App) Translate(_ context.Context, opts Options, texts []string, topts TranslateOptions) ([]string, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	defer s.close()

	settings := s.current()
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		var (
			result string
			err    error
		)
		switch {
		case !settings.UsePinyin:
			result = text
		case topts.NoCache:
			result, err = a.converter.Convert(text, settings.PinyinStyle)
		default:
			result, err = s.alphabet.Translate(text)
		}
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConversionFailed, err), "text", text)
		}
		out = append(out, result)
	}

	return out, nil
}

// Search ranks candidates against query, capped at the MaxResults setting.
// Candidates whose transliteration failed are still matched by name; the
// failure is logged as a warning.
func (a *App) Search(_ context.Context, opts Options, query string, candidates []string) ([]domain.SearchResult, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	defer s.close()

	results, err := s.matcher.Search(query, candidates, s.current().MaxResults)
	if err != nil {
		a.logger.Warn(err.Error())
	}
	return results, nil
}

// SettingView is one setting with its localized description.
type SettingView struct {
	Key         domain.SettingKey
	Value       string
	Description string
	// Detail describes the value itself, for enumerated settings.
	Detail string
}

// Settings returns every setting in display order.
func (a *App) Settings(_ context.Context, opts Options) ([]SettingView, error) {
	s, err := a.open(opts)
	if err != nil {
		return nil, err
	}
	defer s.close()

	return a.describe(s.current())
}

func (a *App) describe(settings domain.Settings) ([]SettingView, error) {
	views := make([]SettingView, 0, len(domain.SettingKeys))
	for _, key := range domain.SettingKeys {
		value, err := settings.Get(key)
		if err != nil {
			return nil, err
		}
		view := SettingView{
			Key:         key,
			Value:       value,
			Description: i18n.Describe(a.translator, settings.Language, key),
		}
		if key == domain.SettingPinyinStyle {
			view.Detail = i18n.Describe(a.translator, settings.Language, settings.PinyinStyle)
		}
		views = append(views, view)
	}
	return views, nil
}

// SetSetting updates a single setting and saves the document.
func (a *App) SetSetting(_ context.Context, opts Options, key, value string) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer s.close()

	settingKey := domain.SettingKey(strings.ToLower(strings.TrimSpace(key)))
	if !slices.Contains(domain.SettingKeys, settingKey) {
		return zerr.With(domain.ErrUnknownSetting, "key", key)
	}
	if settingKey == domain.SettingLanguage && !a.translator.Supports(value) {
		return zerr.With(domain.ErrUnknownLanguage, "language", value)
	}

	settings := s.current()
	if err := settings.Set(settingKey, value); err != nil {
		return err
	}
	if err := s.store.Save(settings); err != nil {
		return err
	}

	a.logger.Info(a.translator.Translate(settings.Language, "settings_saved"))
	return nil
}

// Watch transliterates every line read from in until in is exhausted or ctx
// is done. The settings document is reloaded whenever it changes on disk.
func (a *App) Watch(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Watch(ctx, s.store.Path(), func() {
		s.reload()
		a.logger.Info(a.translator.Translate(s.current().Language, "settings_reloaded"))
	}); err != nil {
		return err
	}

	lines := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			result, err := s.alphabet.Translate(line)
			if err != nil {
				a.logger.Error(zerr.With(errors.Join(domain.ErrConversionFailed, err), "text", line))
				continue
			}
			if _, err := fmt.Fprintln(out, result); err != nil {
				return zerr.Wrap(err, "failed to write output")
			}
		}
	}
}

// Stats searches every line read from in against all lines, sweeps the
// cache and writes the cache metrics in Prometheus text format to out.
func (a *App) Stats(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	s, err := a.open(opts)
	if err != nil {
		return err
	}
	defer s.close()

	var candidates []string
	for line := range readLines(ctx, in) {
		candidates = append(candidates, line)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if !s.current().UsePinyin {
		a.logger.Warn("pinyin matching is disabled, the cache is not used")
	}

	limit := s.current().MaxResults
	for _, query := range candidates {
		if _, err := s.matcher.Search(query, candidates, limit); err != nil {
			a.logger.Warn(err.Error())
		}
	}

	s.cache.Sweep()

	stats := s.cache.Stats()
	a.logger.Info(fmt.Sprintf("%d candidates, %d entries cached (%s), %d hits, %d misses",
		len(candidates), stats.Entries, humanize.Bytes(uint64(max(stats.Bytes, 0))), stats.Hits, stats.Misses))

	return a.metrics.WriteText(out)
}

// readLines streams the non-empty lines of r until it is exhausted or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
