package rig

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Winipedia/winidjango/internal/pyproject"
)

var ErrManifestOutOfDate = errors.New("rig: manifest missing declared dependencies")

// Resolved is the collected output of every registered provider.
type Resolved struct {
	DevDependencies  *pyproject.DependencySet
	ToolDependencies map[string][]string
}

// Resolve invokes every registered provider and collects the declared
// dependencies. Provider errors abort resolution and propagate
// unchanged, wrapped only with the provider name.
func (r *Registry) Resolve() (Resolved, error) {
	deps := pyproject.NewDependencySet()
	for _, cf := range r.ConfigFiles() {
		set, err := cf.DevDependencies()
		if err != nil {
			return Resolved{}, fmt.Errorf("config file %q: %w", cf.Name(), err)
		}
		deps.Merge(set)
	}

	toolDeps := make(map[string][]string)
	for _, tool := range r.Tools() {
		list, err := tool.DevDependencies()
		if err != nil {
			return Resolved{}, fmt.Errorf("tool %q: %w", tool.Name(), err)
		}
		toolDeps[tool.Name()] = list
	}

	return Resolved{DevDependencies: deps, ToolDependencies: toolDeps}, nil
}

// RenderFragment serializes the resolved dependencies as the manifest
// fragment the toolkit writes under [tool.<section>].
func (res Resolved) RenderFragment(section string) ([]byte, error) {
	return pyproject.RenderFragment(section, res.DevDependencies, res.ToolDependencies)
}

// ValidateManifest checks that every resolved dependency is declared in
// the manifest's [tool.<section>] fragment.
func ValidateManifest(m *pyproject.Manifest, section string, res Resolved) error {
	declared, err := m.DevDependencies(section)
	if err != nil {
		return err
	}

	var missing []string
	for _, name := range res.DevDependencies.Names() {
		if !declared.Has(name) {
			missing = append(missing, name)
		}
	}
	for _, tool := range sortedToolNames(res.ToolDependencies) {
		list, ok := m.ToolDependencies(section, tool)
		if !ok {
			missing = append(missing, "tools."+tool)
			continue
		}
		have := make(map[string]int, len(list))
		for _, dep := range list {
			have[dep]++
		}
		for _, dep := range res.ToolDependencies[tool] {
			if have[dep] == 0 {
				missing = append(missing, "tools."+tool+"."+dep)
				continue
			}
			have[dep]--
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (%s)", ErrManifestOutOfDate, strings.Join(missing, ", "), m.Path())
	}
	return nil
}

func sortedToolNames(toolDeps map[string][]string) []string {
	names := make([]string, 0, len(toolDeps))
	for name := range toolDeps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
