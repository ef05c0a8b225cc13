package django

import "github.com/Winipedia/winidjango/internal/rig"

// RegisterInto installs the Django providers into a registry.
func RegisterInto(r *rig.Registry) error {
	if err := r.RegisterConfigFile(PyprojectFile{}); err != nil {
		return err
	}
	if err := r.RegisterTool(Rigger{}); err != nil {
		return err
	}
	return r.RegisterTool(ProjectTester{})
}

// Register installs the Django providers into the process-wide
// registry consumed by the toolkit.
func Register() error {
	return RegisterInto(rig.Default())
}
