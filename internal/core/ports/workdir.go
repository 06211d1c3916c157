package ports

// Workdir defines the interface over the process working directory.
// The real implementation changes process-wide state; tests substitute
// a fake so stack scoping can be exercised without chdir side effects.
//
//go:generate go run go.uber.org/mock/mockgen -source=workdir.go -destination=mocks/mock_workdir.go -package=mocks
type Workdir interface {
	// Chdir changes the working directory.
	Chdir(dir string) error
	// Getwd reports the current working directory.
	Getwd() (string, error)
}
