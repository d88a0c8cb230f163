// Package zipfs mounts zip archives as mutable in-memory entry maps with a
// flush-on-close discipline.
package zipfs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// Archive is a mounted zip archive. All entries live in memory while the
// archive is open; mutations are flushed back to disk atomically on Close.
//
// Entries are whole-value: a write replaces the full entry, never patches in
// place. An Archive is not safe for concurrent use without external locking.
type Archive struct {
	path    string
	entries map[string][]byte
	dirty   bool
	closed  bool
}

// Open mounts the archive at path. The file must exist.
func Open(path string) (*Archive, error) {
	return open(path, false)
}

// Create mounts the archive at path, starting empty when the file does not
// exist yet.
func Create(path string) (*Archive, error) {
	return open(path, true)
}

func open(path string, create bool) (*Archive, error) {
	a := &Archive{
		path:    path,
		entries: make(map[string][]byte),
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		if create && os.IsNotExist(err) {
			a.dirty = true
			return a, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrArchiveOpenFailed, err), "path", path)
	}
	defer r.Close() //nolint:errcheck // Read-only handle

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrArchiveOpenFailed, err), "entry", f.Name)
		}

		data, err := io.ReadAll(rc)
		_ = rc.Close()

		if err != nil {
			return nil, zerr.With(errors.Join(domain.ErrArchiveOpenFailed, err), "entry", f.Name)
		}

		a.entries[normalize(f.Name)] = data
	}

	return a, nil
}

// Path returns the on-disk location of the archive.
func (a *Archive) Path() string {
	return a.path
}

// Names returns all entry names in sorted order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesUnder returns the sorted entry names below root. An empty root yields
// the full tree.
func (a *Archive) NamesUnder(root string) []string {
	root = normalize(root)
	if root == "" {
		return a.Names()
	}

	prefix := root + "/"
	names := make([]string, 0, len(a.entries))

	for name := range a.entries {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}

// Has reports whether the entry exists.
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[normalize(name)]
	return ok
}

// Read returns the bytes of the entry.
func (a *Archive) Read(name string) ([]byte, error) {
	data, ok := a.entries[normalize(name)]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrArchiveEntryMissing, "entry", name), "archive", a.path)
	}
	return data, nil
}

// Write replaces the entry with the given bytes. Parent directories are
// implicit in zip archives, so there is nothing to create.
func (a *Archive) Write(name string, data []byte) {
	a.entries[normalize(name)] = data
	a.dirty = true
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Close releases the mount. A mutated archive is written to a temporary file
// and moved over the original so concurrent readers never observe a partial
// file. Close is idempotent.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	if !a.dirty {
		return nil
	}

	return a.flush()
}

func (a *Archive) flush() error {
	tmp, err := os.CreateTemp(filepath.Dir(a.path), filepath.Base(a.path)+".tmp-*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveFlushFailed, err), "path", a.path)
	}
	tmpPath := tmp.Name()

	if err := a.writeZip(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(errors.Join(domain.ErrArchiveFlushFailed, err), "path", a.path)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(errors.Join(domain.ErrArchiveFlushFailed, err), "path", a.path)
	}

	if err := os.Rename(tmpPath, a.path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(errors.Join(domain.ErrArchiveFlushFailed, err), "path", a.path)
	}

	return nil
}

func (a *Archive) writeZip(w io.Writer) error {
	zw := zip.NewWriter(w)

	// Sorted entry order keeps the flushed file deterministic for identical
	// content, which the idempotence guarantees rely on.
	for _, name := range a.Names() {
		fw, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(a.entries[name]); err != nil {
			return err
		}
	}

	return zw.Close()
}

func normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "/")
}
