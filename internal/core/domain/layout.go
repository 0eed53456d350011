package domain

import "path/filepath"

const (
	// AppName is the directory name used below the per-user config directory.
	AppName = "wisp"

	// PortableDirName is the data directory next to the executable in portable mode.
	PortableDirName = "UserData"

	// SettingsCategory is the directory holding one JSON document per stateful type.
	SettingsCategory = "Settings"

	// DocumentSuffix is the file extension of persisted documents.
	DocumentSuffix = ".json"

	// BackupSuffix is appended to documents that failed to decode.
	BackupSuffix = ".bak"

	// ConfigFileName is the name of the application config file inside the data root.
	ConfigFileName = "wisp.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the path of the config file below dataRoot.
func DefaultConfigPath(dataRoot string) string {
	return filepath.Join(dataRoot, ConfigFileName)
}

// DefaultSettingsDir returns the directory that holds documents below dataRoot.
func DefaultSettingsDir(dataRoot string) string {
	return filepath.Join(dataRoot, SettingsCategory)
}
