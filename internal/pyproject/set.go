package pyproject

import "sort"

// DependencySet is a dependency-name to specifier mapping. Names are
// unique; iteration through Names is always sorted ascending.
type DependencySet struct {
	specs map[string]Specifier
}

// NewDependencySet creates an empty set.
func NewDependencySet() *DependencySet {
	return &DependencySet{specs: make(map[string]Specifier)}
}

// Set upserts one entry.
func (d *DependencySet) Set(name string, spec Specifier) {
	d.specs[name] = spec
}

// Get returns the specifier for name.
func (d *DependencySet) Get(name string) (Specifier, bool) {
	spec, ok := d.specs[name]
	return spec, ok
}

// Has reports whether name is declared.
func (d *DependencySet) Has(name string) bool {
	_, ok := d.specs[name]
	return ok
}

// Len returns the number of entries.
func (d *DependencySet) Len() int {
	return len(d.specs)
}

// Names returns the declared names sorted ascending.
func (d *DependencySet) Names() []string {
	names := make([]string, 0, len(d.specs))
	for name := range d.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge upserts every entry of additions into the set. Existing keys
// not named by additions keep their specifiers.
func (d *DependencySet) Merge(additions *DependencySet) {
	if additions == nil {
		return
	}
	for name, spec := range additions.specs {
		d.specs[name] = spec
	}
}

// Clone returns an independent copy.
func (d *DependencySet) Clone() *DependencySet {
	out := NewDependencySet()
	for name, spec := range d.specs {
		out.specs[name] = spec
	}
	return out
}
