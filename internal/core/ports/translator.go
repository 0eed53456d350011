package ports

// Translator resolves resource keys to localized strings.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// Translate returns the string for key in the given language.
	// Unknown keys fall back to the default language, then to the key itself.
	Translate(language, key string) string

	// Supports reports whether a translation table exists for language.
	Supports(language string) bool
}
