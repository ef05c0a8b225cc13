package pyproject

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type manifestSection struct {
	DevDependencies map[string]any      `toml:"dev-dependencies"`
	Tools           map[string][]string `toml:"tools"`
}

type manifestFile struct {
	Tool map[string]manifestSection `toml:"tool"`
}

// Manifest is a decoded pyproject manifest, read-only.
type Manifest struct {
	path string
	tool map[string]manifestSection
}

// ReadManifest decodes the manifest file at path.
func ReadManifest(path string) (*Manifest, error) {
	var raw manifestFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("pyproject: read manifest (%s): %w", path, err)
	}
	return &Manifest{path: path, tool: raw.Tool}, nil
}

// Path returns the manifest file location.
func (m *Manifest) Path() string {
	return m.path
}

// DevDependencies rebuilds the dev-dependency set declared under
// [tool.<section>.dev-dependencies]. A missing section yields an empty
// set, not an error.
func (m *Manifest) DevDependencies(section string) (*DependencySet, error) {
	set := NewDependencySet()
	sec, ok := m.tool[section]
	if !ok {
		return set, nil
	}
	for name, value := range sec.DevDependencies {
		spec, err := SpecifierFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("pyproject: dependency %q: %w", name, err)
		}
		set.Set(name, spec)
	}
	return set, nil
}

// ToolDependencies returns the dependency list declared for one tool
// under [tool.<section>.tools].
func (m *Manifest) ToolDependencies(section, tool string) ([]string, bool) {
	sec, ok := m.tool[section]
	if !ok {
		return nil, false
	}
	list, ok := sec.Tools[tool]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}
