package ports

// ModTimer defines the interface for probing file modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=modtimer.go -destination=mocks/mock_modtimer.go -package=mocks
type ModTimer interface {
	// MaxMtime returns the maximum last-modified time (UnixNano) across
	// the given files. Files that cannot be stat'ed contribute nothing;
	// an empty or fully unreadable list yields 0.
	MaxMtime(files []string) (int64, error)
}
