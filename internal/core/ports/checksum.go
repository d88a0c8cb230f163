package ports

// ChecksumService produces a fixed-length hash of arbitrary byte content,
// rendered as a hex string. It is a change-detection token, not a
// cryptographic digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksum.go -destination=mocks/mock_checksum.go -package=mocks
type ChecksumService interface {
	// Sum hashes the given bytes.
	Sum(data []byte) string

	// SumFile hashes the content of the file at path.
	SumFile(path string) (string, error)
}
