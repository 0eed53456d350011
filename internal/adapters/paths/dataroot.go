package paths

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator reports the directories DataRoot chooses between.
// It exists so tests can run without touching the real user profile.
type Locator struct {
	Executable    func() (string, error)
	UserConfigDir func() (string, error)
}

// OSLocator uses the running executable and the operating system's config directory.
func OSLocator() Locator {
	return Locator{
		Executable:    os.Executable,
		UserConfigDir: os.UserConfigDir,
	}
}

// DataRoot returns the directory the application keeps its files in.
// A non-empty override wins. Portable installs keep data next to the
// executable, all others below the per-user config directory.
func (l Locator) DataRoot(portable bool, override string) (string, error) {
	if o := strings.TrimSpace(override); o != "" {
		return filepath.Clean(o), nil
	}

	if portable {
		exe, err := l.Executable()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrDataRootUnavailable.Error())
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Join(filepath.Dir(exe), domain.PortableDirName), nil
	}

	dir, err := l.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrDataRootUnavailable.Error())
	}
	return filepath.Join(dir, domain.AppName), nil
}
