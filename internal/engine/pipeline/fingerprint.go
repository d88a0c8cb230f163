package pipeline

import (
	"errors"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fingerprint decides whether the project cache tier is stale by comparing
// the persisted overlay hash against the freshly computed one.
type Fingerprint struct {
	checksum ports.ChecksumService
	store    ports.FingerprintStore
}

// NewFingerprint creates a new Fingerprint evaluator.
func NewFingerprint(checksum ports.ChecksumService, store ports.FingerprintStore) *Fingerprint {
	return &Fingerprint{checksum: checksum, store: store}
}

// Evaluate computes the current fingerprint of the overlay at overlayPath
// and compares it with the value persisted at persistPath. Without a
// configured overlay the hash of empty input is used, so an absent overlay
// and an empty overlay file fingerprint identically.
//
// Dirty is reported when no value was persisted yet, when force is set, or
// when the two fingerprints differ. The new value is written back whenever
// dirty is reported, so the next run starts from a clean baseline.
func (f *Fingerprint) Evaluate(persistPath, overlayPath string, force bool) (string, bool, error) {
	current, err := f.compute(overlayPath)
	if err != nil {
		return "", false, err
	}

	persisted, err := f.store.Get(persistPath)
	if err != nil {
		return "", false, err
	}

	dirty := force || persisted == "" || persisted != current

	if dirty {
		if err := f.store.Put(persistPath, current); err != nil {
			return "", false, err
		}
	}

	return current, dirty, nil
}

func (f *Fingerprint) compute(overlayPath string) (string, error) {
	if overlayPath == "" {
		return f.checksum.Sum(nil), nil
	}

	sum, err := f.checksum.SumFile(overlayPath)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrOverlayUnreadable, err), "path", overlayPath)
	}

	return sum, nil
}
