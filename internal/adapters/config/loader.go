// Package config provides the manifest loader for nest projects.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader over nest.yaml files.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the manifest in the given directory and returns the
// project model. Include paths are resolved relative to the manifest.
func (l *Loader) Load(dir string) (*domain.Project, error) {
	path := filepath.Join(dir, ManifestName)
	return l.LoadFile(path)
}

// LoadFile reads a manifest from an explicit path.
func (l *Loader) LoadFile(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var nf Nestfile
	if err := yaml.Unmarshal(data, &nf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	cfg, err := decodeVars(&nf.Vars)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest vars"), "path", path)
	}
	if nf.App != "" {
		cfg = append(domain.Config{{Key: "app", Value: nf.App}}, cfg...)
	}

	dir := filepath.Dir(path)
	files := make([]string, 0, len(nf.Include))
	for _, inc := range nf.Include {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		files = append(files, inc)
	}

	p := &domain.Project{
		Name:        nf.Name,
		File:        path,
		Config:      cfg,
		Apps:        nf.Apps,
		Files:       files,
		Steps:       make([]domain.Step, 0, len(nf.Steps)),
		Subprojects: nf.Subprojects,
	}
	for _, dto := range nf.Steps {
		if dto.Name == "" {
			return nil, zerr.With(zerr.New("step is missing a name"), "path", path)
		}
		inputs := make([]string, 0, len(dto.Inputs))
		for _, in := range dto.Inputs {
			if !filepath.IsAbs(in) {
				in = filepath.Join(dir, in)
			}
			inputs = append(inputs, in)
		}
		p.Steps = append(p.Steps, domain.Step{
			Name:   dto.Name,
			Cmd:    dto.Cmd,
			Env:    dto.Env,
			Inputs: inputs,
			AtRoot: dto.AtRoot,
		})
	}

	if l.log != nil {
		l.log.Info("loaded manifest " + path)
	}
	return p, nil
}

// decodeVars turns the raw vars mapping node into an ordered Config.
// A yaml mapping node stores keys and values as alternating content
// entries, in source order.
func decodeVars(node *yaml.Node) (domain.Config, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.New("vars must be a mapping")
	}

	cfg := make(domain.Config, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, zerr.Wrap(err, "invalid vars key")
		}
		var val any
		if err := node.Content[i+1].Decode(&val); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid vars value"), "key", key)
		}
		cfg = append(cfg, domain.Setting{Key: key, Value: val})
	}
	return cfg, nil
}
