// Package i18n resolves resource keys to localized strings.
package i18n

import (
	"embed"
	"path"
	"slices"
	"strings"

	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

var _ ports.Translator = (*Translator)(nil)

// Describable is an enumerated value with a localized description.
type Describable interface {
	ResourceKey() string
}

// Translator implements ports.Translator over the embedded locale tables.
type Translator struct {
	tables map[string]map[string]string
}

// NewTranslator loads every embedded locale table.
func NewTranslator() (*Translator, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list locale tables")
	}

	t := &Translator{tables: make(map[string]map[string]string, len(entries))}
	for _, e := range entries {
		name := e.Name()
		data, err := locales.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read locale table"), "file", name)
		}

		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse locale table"), "file", name)
		}
		t.tables[strings.TrimSuffix(name, path.Ext(name))] = table
	}

	if _, ok := t.tables[domain.DefaultLanguage]; !ok {
		return nil, zerr.With(domain.ErrUnknownLanguage, "language", domain.DefaultLanguage)
	}

	return t, nil
}

// Translate returns the string for key in language. Missing entries fall back
// to the default language and finally to the key itself.
func (t *Translator) Translate(language, key string) string {
	if s, ok := t.tables[normalize(language)][key]; ok {
		return s
	}
	if s, ok := t.tables[domain.DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Supports reports whether a table exists for language.
func (t *Translator) Supports(language string) bool {
	_, ok := t.tables[normalize(language)]
	return ok
}

// Languages returns the available languages, sorted.
func (t *Translator) Languages() []string {
	langs := make([]string, 0, len(t.tables))
	for lang := range t.tables {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Describe returns the localized description of v.
func Describe(tr ports.Translator, language string, v Describable) string {
	return tr.Translate(language, v.ResourceKey())
}

func normalize(language string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(language)), "_", "-")
}
