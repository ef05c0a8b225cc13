package django

import (
	"github.com/Winipedia/winidjango/internal/pyproject"
	"github.com/Winipedia/winidjango/internal/rig"
)

const (
	depDjangoStubs  = "django-stubs"
	depPytestDjango = "pytest-django"
)

// PyprojectFile contributes the Django dev-dependency entries to the
// generated manifest. It owns exactly the django-stubs and
// pytest-django keys; every other parent entry passes through
// untouched.
type PyprojectFile struct {
	// Parent supplies the base mapping. Nil means the toolkit's
	// standard provider.
	Parent rig.ConfigFile
}

func (f PyprojectFile) Name() string { return "pyproject" }

// DevDependencies returns the parent mapping upserted with the Django
// additions. Parent errors propagate unchanged.
func (f PyprojectFile) DevDependencies() (*pyproject.DependencySet, error) {
	base, err := f.parent().DevDependencies()
	if err != nil {
		return nil, err
	}

	additions := pyproject.NewDependencySet()
	additions.Set(depDjangoStubs, pyproject.Wildcard())
	additions.Set(depPytestDjango, pyproject.Wildcard())
	return rig.MergeDependencies(base, additions), nil
}

func (f PyprojectFile) parent() rig.ConfigFile {
	if f.Parent != nil {
		return f.Parent
	}
	return rig.PyprojectFile{}
}
