package ports

// FingerprintStore persists the last-seen configuration fingerprint of the
// project tier.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the persisted fingerprint at path.
	// Returns "", nil if none has been written yet.
	Get(path string) (string, error)

	// Put stores the fingerprint at path, replacing atomically.
	Put(path, fingerprint string) error
}
