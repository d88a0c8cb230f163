// Package fs provides filesystem-backed adapters for hashing and fingerprint
// persistence.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChecksumService = (*Checksum)(nil)

// Checksum implements ports.ChecksumService using XXHash64.
type Checksum struct{}

// NewChecksum creates a new Checksum service.
func NewChecksum() *Checksum {
	return &Checksum{}
}

// Sum hashes the given bytes and renders the digest as 16 hex characters.
func (c *Checksum) Sum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// SumFile hashes the content of the file at path.
func (c *Checksum) SumFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
