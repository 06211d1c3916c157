package config

import "gopkg.in/yaml.v3"

// ManifestName is the file name of a project manifest.
const ManifestName = "nest.yaml"

// Nestfile represents the structure of a nest.yaml manifest.
type Nestfile struct {
	Name string `yaml:"name"`
	App  string `yaml:"app"`
	// Vars is decoded as a raw node so the mapping's source order
	// survives into the frame config.
	Vars        yaml.Node `yaml:"vars"`
	Apps        []string  `yaml:"apps"`
	Include     []string  `yaml:"include"`
	Steps       []StepDTO `yaml:"steps"`
	Subprojects []string  `yaml:"subprojects"`
}

// StepDTO represents a build step definition in the manifest.
type StepDTO struct {
	Name   string            `yaml:"name"`
	Cmd    []string          `yaml:"cmd"`
	Env    map[string]string `yaml:"env"`
	Inputs []string          `yaml:"inputs"`
	AtRoot bool              `yaml:"at_root"`
}
