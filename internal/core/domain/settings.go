package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PinyinStyle selects how Han characters are romanized.
type PinyinStyle string

const (
	// PinyinFull spells every syllable ("你好" -> "nihao").
	PinyinFull PinyinStyle = "full"
	// PinyinInitials keeps the first letter of every syllable ("你好" -> "nh").
	PinyinInitials PinyinStyle = "initials"
)

// PinyinStyles lists every supported style in display order.
var PinyinStyles = []PinyinStyle{PinyinFull, PinyinInitials}

// ResourceKey maps the style to its localized description key.
func (s PinyinStyle) ResourceKey() string {
	switch s {
	case PinyinInitials:
		return "pinyin_style_initials"
	default:
		return "pinyin_style_full"
	}
}

// Valid reports whether s is a known style.
func (s PinyinStyle) Valid() bool {
	return slices.Contains(PinyinStyles, s)
}

// Settings is the user settings document.
type Settings struct {
	Language    string      `json:"language"`
	UsePinyin   bool        `json:"use_pinyin"`
	PinyinStyle PinyinStyle `json:"pinyin_style"`
	MaxResults  int         `json:"max_results"`
}

const (
	// DefaultLanguage is the language used when none is configured.
	DefaultLanguage = "en"
	// DefaultMaxResults caps search output when no limit is configured.
	DefaultMaxResults = 10
)

// SettingsDocument describes how Settings is persisted.
var SettingsDocument = Descriptor[Settings]{
	Name:    "Settings",
	Default: DefaultSettings,
}

// DefaultSettings returns the settings used on first start.
func DefaultSettings() Settings {
	return Settings{
		Language:    DefaultLanguage,
		UsePinyin:   false,
		PinyinStyle: PinyinFull,
		MaxResults:  DefaultMaxResults,
	}
}

// SettingKey names a field of Settings addressable from the CLI.
type SettingKey string

// Setting keys, in display order.
const (
	SettingLanguage    SettingKey = "language"
	SettingUsePinyin   SettingKey = "use_pinyin"
	SettingPinyinStyle SettingKey = "pinyin_style"
	SettingMaxResults  SettingKey = "max_results"
)

// SettingKeys lists the addressable settings in display order.
var SettingKeys = []SettingKey{SettingLanguage, SettingUsePinyin, SettingPinyinStyle, SettingMaxResults}

// ResourceKey maps the setting to its localized description key.
func (k SettingKey) ResourceKey() string {
	return "setting_" + string(k)
}

// Get returns the string form of the setting identified by key.
func (s Settings) Get(key SettingKey) (string, error) {
	switch key {
	case SettingLanguage:
		return s.Language, nil
	case SettingUsePinyin:
		return strconv.FormatBool(s.UsePinyin), nil
	case SettingPinyinStyle:
		return string(s.PinyinStyle), nil
	case SettingMaxResults:
		return strconv.Itoa(s.MaxResults), nil
	default:
		return "", zerr.With(ErrUnknownSetting, "key", string(key))
	}
}

// Set parses value and assigns it to the setting identified by key.
func (s *Settings) Set(key SettingKey, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case SettingLanguage:
		if value == "" {
			return zerr.With(zerr.With(ErrInvalidSettingValue, "key", string(key)), "value", value)
		}
		s.Language = strings.ToLower(value)
	case SettingUsePinyin:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, ErrInvalidSettingValue.Error()), "key", string(key))
		}
		s.UsePinyin = b
	case SettingPinyinStyle:
		style := PinyinStyle(strings.ToLower(value))
		if !style.Valid() {
			return zerr.With(zerr.With(ErrInvalidSettingValue, "key", string(key)), "value", value)
		}
		s.PinyinStyle = style
	case SettingMaxResults:
		n, err := strconv.Atoi(value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, ErrInvalidSettingValue.Error()), "key", string(key))
		}
		if n <= 0 {
			return zerr.With(zerr.With(ErrInvalidSettingValue, "key", string(key)), "value", value)
		}
		s.MaxResults = n
	default:
		return zerr.With(ErrUnknownSetting, "key", string(key))
	}

	return nil
}

// Normalize fills zero fields of documents written by older versions.
func (s Settings) Normalize() Settings {
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if !s.PinyinStyle.Valid() {
		s.PinyinStyle = PinyinFull
	}
	if s.MaxResults <= 0 {
		s.MaxResults = DefaultMaxResults
	}
	return s
}
