package pyproject

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpecifier = errors.New("pyproject: invalid specifier")

// Specifier is one dependency version constraint. A specifier with only
// Version set renders as a bare string; extras or markers promote it to
// a table.
type Specifier struct {
	Version string
	Extras  []string
	Markers string
}

// Wildcard returns the any-version specifier.
func Wildcard() Specifier {
	return Specifier{Version: "*"}
}

// Exact returns a specifier pinned to one version string.
func Exact(version string) Specifier {
	return Specifier{Version: strings.TrimSpace(version)}
}

// IsTable reports whether the specifier carries qualifiers beyond the
// version and must render as a table.
func (s Specifier) IsTable() bool {
	return len(s.Extras) > 0 || strings.TrimSpace(s.Markers) != ""
}

// Value returns the TOML-facing representation: a string for bare
// specifiers, a table for qualified ones.
func (s Specifier) Value() any {
	if !s.IsTable() {
		return s.Version
	}
	table := map[string]any{"version": s.Version}
	if len(s.Extras) > 0 {
		extras := make([]string, len(s.Extras))
		copy(extras, s.Extras)
		table["extras"] = extras
	}
	if strings.TrimSpace(s.Markers) != "" {
		table["markers"] = s.Markers
	}
	return table
}

// SpecifierFromValue rebuilds a specifier from a decoded TOML value.
func SpecifierFromValue(v any) (Specifier, error) {
	switch val := v.(type) {
	case string:
		version := strings.TrimSpace(val)
		if version == "" {
			return Specifier{}, fmt.Errorf("%w: empty version string", ErrInvalidSpecifier)
		}
		return Specifier{Version: version}, nil
	case map[string]any:
		spec := Specifier{}
		if raw, ok := val["version"]; ok {
			version, ok := raw.(string)
			if !ok {
				return Specifier{}, fmt.Errorf("%w: version must be a string", ErrInvalidSpecifier)
			}
			spec.Version = strings.TrimSpace(version)
		}
		if spec.Version == "" {
			return Specifier{}, fmt.Errorf("%w: table specifier missing version", ErrInvalidSpecifier)
		}
		if raw, ok := val["extras"]; ok {
			extras, err := stringSlice(raw)
			if err != nil {
				return Specifier{}, fmt.Errorf("%w: extras: %v", ErrInvalidSpecifier, err)
			}
			spec.Extras = extras
		}
		if raw, ok := val["markers"]; ok {
			markers, ok := raw.(string)
			if !ok {
				return Specifier{}, fmt.Errorf("%w: markers must be a string", ErrInvalidSpecifier)
			}
			spec.Markers = markers
		}
		return spec, nil
	default:
		return Specifier{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidSpecifier, v)
	}
}

func stringSlice(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		if direct, ok := v.([]string); ok {
			out := make([]string, len(direct))
			copy(out, direct)
			return out, nil
		}
		return nil, fmt.Errorf("expected array, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string element, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}
