package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint computes a stable content hash over the given files.
	// The same file contents always produce the same fingerprint,
	// regardless of path order.
	Fingerprint(paths []string) (string, error)
}
