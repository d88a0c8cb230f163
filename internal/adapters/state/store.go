// Package state persists the project-tier configuration fingerprint.
package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore as a single plain-text file per
// fingerprint path.
type Store struct{}

// NewStore creates a new fingerprint store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the persisted fingerprint at path.
// Returns "", nil when nothing has been written yet.
func (s *Store) Get(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the artifact plan
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(errors.Join(domain.ErrFingerprintUnreadable, err), "path", path)
	}

	return strings.TrimSpace(string(data)), nil
}

// Put stores the fingerprint at path via write-temp-then-rename, so readers
// sharing the cache never observe a partial file.
func (s *Store) Put(path, fingerprint string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrFingerprintWriteFailed, err), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrFingerprintWriteFailed, err), "path", path)
	}
	tmpPath := tmp.Name()

	_, werr := tmp.WriteString(fingerprint + "\n")
	cerr := tmp.Close()

	if werr != nil || cerr != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(errors.Join(domain.ErrFingerprintWriteFailed, werr, cerr), "path", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(errors.Join(domain.ErrFingerprintWriteFailed, err), "path", path)
	}

	return nil
}
