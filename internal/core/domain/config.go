// Package domain contains the core domain models for the project-context stack.
package domain

import "fmt"

// Setting is a single key/value pair of project configuration.
// Values are opaque to this component; they come straight from the
// manifest loader or from command-line overrides.
type Setting struct {
	Key   string
	Value any
}

// Config is an ordered list of settings. Order is preserved from the
// source (manifest mapping order, override flag order) because callers
// may render or diff configuration in that order.
type Config []Setting

// Get returns the value for key and whether it is present.
// If a key appears more than once the first occurrence wins.
func (c Config) Get(key string) (any, bool) {
	for _, s := range c {
		if s.Key == key {
			return s.Value, true
		}
	}
	return nil, false
}

// GetString returns the value for key if it is present and a string.
func (c Config) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Merge returns a new Config that is the keyed union of c and over.
// Keys from over win on conflict and keep c's position; keys only in
// over are appended in over's order. Neither receiver nor argument is
// mutated.
func (c Config) Merge(over Config) Config {
	merged := make(Config, 0, len(c)+len(over))
	seen := make(map[string]int, len(c))
	for _, s := range c {
		seen[s.Key] = len(merged)
		merged = append(merged, s)
	}
	for _, s := range over {
		if i, ok := seen[s.Key]; ok {
			merged[i].Value = s.Value
			continue
		}
		seen[s.Key] = len(merged)
		merged = append(merged, s)
	}
	return merged
}

// Environ renders the config as KEY=VALUE entries in config order, for
// handing a frame's effective configuration to step commands.
func (c Config) Environ() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, 0, len(c))
	for _, s := range c {
		out = append(out, s.Key+"="+fmt.Sprint(s.Value))
	}
	return out
}

// Clone returns a shallow copy of c. Values are shared; the slice is not.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	copy(out, c)
	return out
}
