package rig

import "github.com/Winipedia/winidjango/internal/pyproject"

// ConfigFile is the contract for providers contributing entries to a
// generated manifest config file. DevDependencies must return the full
// resolved mapping, parent entries included; errors from a parent
// provider propagate unchanged.
type ConfigFile interface {
	Name() string
	DevDependencies() (*pyproject.DependencySet, error)
}

// Tool is the contract for toolkit tools declaring the dev dependencies
// they need at runtime. The returned list is append-ordered and never
// deduplicated.
type Tool interface {
	Name() string
	DevDependencies() ([]string, error)
}
