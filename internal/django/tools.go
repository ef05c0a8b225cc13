package django

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Winipedia/winidjango/internal/rig"
	"github.com/Winipedia/winidjango/internal/tools"
)

// Rigger extends the toolkit's maintenance tool with the Django stubs
// package.
type Rigger struct {
	// Parent supplies the base list. Nil means the toolkit's rigger.
	Parent rig.Tool
}

func (r Rigger) Name() string { return "rigger" }

// DevDependencies returns the parent list with django-stubs appended.
func (r Rigger) DevDependencies() ([]string, error) {
	base, err := r.parent().DevDependencies()
	if err != nil {
		return nil, err
	}
	return rig.AppendDependencies(base, depDjangoStubs), nil
}

func (r Rigger) parent() rig.Tool {
	if r.Parent != nil {
		return r.Parent
	}
	return rig.Rigger{}
}

// ProjectTester extends the toolkit's test runner with the Django
// pytest plugin and knows how to execute the suite.
type ProjectTester struct {
	// Parent supplies the base list. Nil means the toolkit's tester.
	Parent rig.Tool
	// Runner executes the test command. Nil means the local host.
	Runner tools.CommandRunner
	// Dir is the project directory the suite runs in. Empty means the
	// current working directory.
	Dir string
}

func (t ProjectTester) Name() string { return "project-tester" }

// DevDependencies returns the parent list with pytest-django appended.
func (t ProjectTester) DevDependencies() ([]string, error) {
	base, err := t.parent().DevDependencies()
	if err != nil {
		return nil, err
	}
	return rig.AppendDependencies(base, depPytestDjango), nil
}

// Command returns the test runner invocation.
func (t ProjectTester) Command() []string {
	return []string{"pytest"}
}

// Run bootstraps the minimal settings and executes the project's test
// suite on the configured runner.
func (t ProjectTester) Run() error {
	if err := Bootstrap(); err != nil {
		return err
	}

	runner := t.Runner
	if runner == nil {
		runner = tools.ExecRunner{}
	}
	cmd := t.Command()
	res, err := runner.Run(t.Dir, cmd[0], cmd[1:]...)
	log.Debug().
		Int32("exit_code", res.ExitCode).
		Int("stdout_bytes", len(res.Stdout)).
		Int("stderr_bytes", len(res.Stderr)).
		Msg("django.ProjectTester.Run")
	if err != nil {
		return fmt.Errorf("django: project tests failed (exit %d): %w", res.ExitCode, err)
	}
	return nil
}

func (t ProjectTester) parent() rig.Tool {
	if t.Parent != nil {
		return t.Parent
	}
	return rig.ProjectTester{}
}
