package ports

import "go.trai.ch/wisp/internal/core/domain"

// Converter transliterates text into a Latin phonetic form.
// Implementations must be deterministic for identical input.
//
//go:generate mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks
type Converter interface {
	// Convert returns the transliteration of text using the given style.
	// Text without convertible characters is returned unchanged.
	Convert(text string, style domain.PinyinStyle) (string, error)
}
