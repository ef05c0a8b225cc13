package rig

import "github.com/Winipedia/winidjango/internal/pyproject"

// MergeDependencies combines a base mapping with addition entries by
// upsert. Base keys not named by additions keep their specifiers; the
// result is independent of both inputs.
func MergeDependencies(base, additions *pyproject.DependencySet) *pyproject.DependencySet {
	var out *pyproject.DependencySet
	if base == nil {
		out = pyproject.NewDependencySet()
	} else {
		out = base.Clone()
	}
	out.Merge(additions)
	return out
}

// AppendDependencies combines a base list with addition entries by
// appending them in order. No deduplication: a literal already present
// in base appears again.
func AppendDependencies(base []string, additions ...string) []string {
	out := make([]string, 0, len(base)+len(additions))
	out = append(out, base...)
	out = append(out, additions...)
	return out
}
