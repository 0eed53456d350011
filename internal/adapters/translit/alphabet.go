package translit

import (
	"sync"

	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
)

// SettingsFunc returns the settings currently in effect.
type SettingsFunc func() domain.Settings

// Alphabet translates names into their phonetic form when the user enabled it.
type Alphabet struct {
	cache     *Cache
	converter ports.Converter
	settings  SettingsFunc

	mu    sync.Mutex
	style domain.PinyinStyle
}

// NewAlphabet binds cache to converter, gated by the UsePinyin setting.
func NewAlphabet(cache *Cache, converter ports.Converter, settings SettingsFunc) *Alphabet {
	return &Alphabet{
		cache:     cache,
		converter: converter,
		settings:  settings,
		style:     settings().PinyinStyle,
	}
}

// Translate returns the transliteration of text, or text itself when
// transliteration is disabled.
func (a *Alphabet) Translate(text string) (string, error) {
	current := a.settings()
	if current.UsePinyin {
		a.observeStyle(current.PinyinStyle)
	}

	return a.cache.Get(text, current.UsePinyin, func(input string) (string, error) {
		return a.converter.Convert(input, current.PinyinStyle)
	})
}

// observeStyle drops cached values produced with a different style.
func (a *Alphabet) observeStyle(style domain.PinyinStyle) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.style == style {
		return
	}
	a.style = style
	a.cache.Purge()
}
