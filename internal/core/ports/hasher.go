package ports

// ArtifactHasher computes content checksums of exported artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ArtifactHasher interface {
	// Checksum returns the hex encoded content hash of the file at path.
	Checksum(path string) (string, error)
}
