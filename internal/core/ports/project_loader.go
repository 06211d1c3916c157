// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/nest/internal/core/domain"

// ProjectLoader defines the interface for loading a project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the manifest in the given directory and returns the project model.
	Load(dir string) (*domain.Project, error)
}
