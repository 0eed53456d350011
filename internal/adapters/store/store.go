// Package store implements one-JSON-file-per-type document storage.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.trai.ch/wisp/internal/adapters/paths"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store persists a single document of type T.
type Store[T any] struct {
	mu   sync.Mutex
	path string
	desc domain.Descriptor[T]
}

// Open prepares the store for desc below the resolver's data root.
// The directory is created immediately; the document itself is not read.
func Open[T any](resolver *paths.Resolver, desc domain.Descriptor[T]) (*Store[T], error) {
	path, err := resolver.Resolve(domain.SettingsCategory, desc.Name, domain.DocumentSuffix)
	if err != nil {
		return nil, err
	}

	return &Store[T]{
		path: path,
		desc: desc,
	}, nil
}

// Path returns the location of the document.
func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the stored document.
//
// A missing file yields the descriptor's default and no error. A file that
// cannot be decoded is renamed aside and the default is returned together
// with an error matching domain.ErrStoreCorrupt.
func (s *Store[T]) Load() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is built by paths.Resolver from a validated name
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.desc.New(), nil
		}
		var zero T
		return zero, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	value := s.desc.New()
	if err := json.Unmarshal(data, &value); err != nil {
		return s.recoverCorrupt(err)
	}

	return value, nil
}

// recoverCorrupt moves the unreadable document aside and returns the default.
func (s *Store[T]) recoverCorrupt(cause error) (T, error) {
	backup := s.path + "." + ulid.Make().String() + domain.BackupSuffix

	if err := os.Rename(s.path, backup); err != nil {
		archiveErr := zerr.With(zerr.Wrap(err, domain.ErrStoreArchiveFailed.Error()), "path", s.path)
		return s.desc.New(), errors.Join(domain.ErrStoreCorrupt, cause, archiveErr)
	}

	return s.desc.New(), zerr.With(
		zerr.With(errors.Join(domain.ErrStoreCorrupt, cause), "path", s.path),
		"backup", backup,
	)
}

// Save replaces the document atomically: the value is written to a temporary
// file in the same directory, synced, and renamed over the target.
func (s *Store[T]) Save(value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Encode(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "name", s.desc.Name)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", s.path)
	}

	return nil
}

// Encode renders value the way Save writes it.
func Encode[T any](value T) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
