package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidName is returned when a category or document name cannot be used as a path segment.
	ErrInvalidName = zerr.New("invalid storage name")

	// ErrEmptyDataRoot is returned when a path resolver is created without a data root.
	ErrEmptyDataRoot = zerr.New("data root is empty")

	// ErrDataRootUnavailable is returned when no data root can be determined for the current user.
	ErrDataRootUnavailable = zerr.New("failed to determine data root")

	// ErrStoreCreateFailed is returned when the document store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create document store directory")

	// ErrStoreReadFailed is returned when a document cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read document")

	// ErrStoreCorrupt is returned when a document exists but cannot be decoded.
	// The document has been archived next to the original path and defaults were returned.
	ErrStoreCorrupt = zerr.New("document is corrupt")

	// ErrStoreArchiveFailed is returned when a corrupt document cannot be moved aside.
	ErrStoreArchiveFailed = zerr.New("failed to archive corrupt document")

	// ErrStoreMarshalFailed is returned when a document cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal document")

	// ErrStoreWriteFailed is returned when a document cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write document")

	// ErrCacheClosed is returned when the transliteration cache is used after Close.
	ErrCacheClosed = zerr.New("transliteration cache is closed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is out of range or malformed.
	ErrConfigInvalid = zerr.New("invalid config value")

	// ErrUnknownSetting is returned when a settings key does not exist.
	ErrUnknownSetting = zerr.New("unknown setting")

	// ErrInvalidSettingValue is returned when a settings value cannot be parsed for its key.
	ErrInvalidSettingValue = zerr.New("invalid setting value")

	// ErrUnknownLanguage is returned when no translation table exists for a language.
	ErrUnknownLanguage = zerr.New("unknown language")

	// ErrConversionFailed is returned when text cannot be transliterated.
	ErrConversionFailed = zerr.New("failed to transliterate text")

	// ErrWatcherFailed is returned when the settings watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch settings")

	// ErrCandidatesReadFailed is returned when search candidates cannot be read.
	ErrCandidatesReadFailed = zerr.New("failed to read search candidates")
)
