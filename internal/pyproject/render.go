package pyproject

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Fragment is the manifest section contributed by the rig toolkit.
type Fragment struct {
	DevDependencies map[string]any      `toml:"dev-dependencies"`
	Tools           map[string][]string `toml:"tools,omitempty"`
}

type fragmentDoc struct {
	Tool map[string]Fragment `toml:"tool"`
}

// RenderFragment serializes the resolved dev dependencies and per-tool
// dependency lists as a [tool.<section>] manifest fragment.
func RenderFragment(section string, deps *DependencySet, tools map[string][]string) ([]byte, error) {
	if section == "" {
		return nil, fmt.Errorf("pyproject: fragment section is required")
	}
	fragment := Fragment{DevDependencies: map[string]any{}}
	if deps != nil {
		for _, name := range deps.Names() {
			spec, _ := deps.Get(name)
			fragment.DevDependencies[name] = spec.Value()
		}
	}
	if len(tools) > 0 {
		fragment.Tools = make(map[string][]string, len(tools))
		for name, list := range tools {
			out := make([]string, len(list))
			copy(out, list)
			fragment.Tools[name] = out
		}
	}

	doc := fragmentDoc{Tool: map[string]Fragment{section: fragment}}
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("pyproject: render fragment: %w", err)
	}
	return data, nil
}
