package domain

// Project is the loaded form of a nest.yaml manifest, produced by the
// config loader and consumed by the task engine.
type Project struct {
	Name string
	File string
	// Config is the manifest's vars section in source order.
	Config Config
	// Apps lists application identifiers declared by the manifest.
	Apps []string
	// Files lists extra files that contributed configuration (includes,
	// env files). The manifest itself is tracked separately as File.
	Files []string
	Steps []Step
	// Subprojects holds directories (relative to the manifest) that
	// contain nested manifests to build recursively.
	Subprojects []string
}

// Step is one build step of a project.
type Step struct {
	Name string
	Cmd  []string
	Env  map[string]string
	// Inputs are files whose content feeds the step's fingerprint.
	Inputs []string
	// AtRoot runs the step rooted at the nearest recursing ancestor's
	// directory instead of the active project's.
	AtRoot bool
}

// Step returns the project's step with the given name.
func (p *Project) Step(name string) (Step, bool) {
	for _, s := range p.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}
