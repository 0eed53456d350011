// Package paths resolves where documents live below the data root.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver maps (category, name) pairs to files below a fixed data root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at dataRoot.
// The root is cleaned and made absolute; it is created lazily by Resolve.
func NewResolver(dataRoot string) (*Resolver, error) {
	if strings.TrimSpace(dataRoot) == "" {
		return nil, domain.ErrEmptyDataRoot
	}

	abs, err := filepath.Abs(dataRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get absolute data root"), "data_root", dataRoot)
	}

	return &Resolver{root: abs}, nil
}

// Root returns the absolute data root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns <root>/<category>/<name><suffix> and guarantees that the
// category directory exists. Creating an existing directory is not an error.
func (r *Resolver) Resolve(category, name, suffix string) (string, error) {
	if err := ValidateName(category); err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid document category"), "category", category)
	}
	if err := ValidateName(name); err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid document name"), "name", name)
	}
	if strings.ContainsAny(suffix, `/\`) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidName, "invalid document suffix"), "suffix", suffix)
	}

	dir := filepath.Join(r.root, category)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(errors.Join(domain.ErrStoreCreateFailed, err), "dir", dir)
	}

	return filepath.Join(dir, name+suffix), nil
}

// ValidateName rejects names that would escape their directory.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return domain.ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return domain.ErrInvalidName
	case strings.Contains(name, ".."):
		return domain.ErrInvalidName
	case filepath.VolumeName(name) != "":
		return domain.ErrInvalidName
	}
	return nil
}
