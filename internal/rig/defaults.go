package rig

import "github.com/Winipedia/winidjango/internal/pyproject"

// PyprojectFile is the toolkit's base manifest provider. It carries the
// standard dev-dependency set every scaffolded project receives.
type PyprojectFile struct{}

func (PyprojectFile) Name() string { return "pyproject" }

// DevDependencies returns the standard dev-dependency mapping.
func (PyprojectFile) DevDependencies() (*pyproject.DependencySet, error) {
	set := pyproject.NewDependencySet()
	set.Set("mypy", pyproject.Wildcard())
	set.Set("pre-commit", pyproject.Wildcard())
	set.Set("pytest", pyproject.Wildcard())
	set.Set("pytest-cov", pyproject.Wildcard())
	set.Set("ruff", pyproject.Wildcard())
	return set, nil
}

// Rigger is the toolkit's own maintenance tool.
type Rigger struct{}

func (Rigger) Name() string { return "rigger" }

// DevDependencies returns the packages the rigger needs at dev time.
func (Rigger) DevDependencies() ([]string, error) {
	return []string{"rig"}, nil
}

// ProjectTester runs the scaffolded project's test suite.
type ProjectTester struct{}

func (ProjectTester) Name() string { return "project-tester" }

// DevDependencies returns the packages the test runner needs.
func (ProjectTester) DevDependencies() ([]string, error) {
	return []string{"pytest"}, nil
}

// Command returns the test runner invocation.
func (ProjectTester) Command() []string {
	return []string{"pytest"}
}
