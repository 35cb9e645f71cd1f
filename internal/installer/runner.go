package installer

import (
	"os"
	"os/exec"
)

// Runner executes external command invocations. Two implementations
// exist: ExecRunner spawns the process, DryRunner does nothing. Callers
// echo the command before Run either way, so dry-run output still shows
// what would have happened.
type Runner interface {
	Run(argv []string) error
}

// NewRunner picks the implementation for the requested mode.
func NewRunner(dryRun bool) Runner {
	if dryRun {
		return DryRunner{}
	}
	return ExecRunner{}
}

// ExecRunner spawns the command synchronously with inherited standard
// streams, so package manager prompts and progress reach the terminal.
type ExecRunner struct{}

// Run blocks until the spawned process exits. A non-zero exit is returned
// as an error; callers decide whether that is fatal (by default it is not).
func (ExecRunner) Run(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// DryRunner satisfies Runner without touching the system.
type DryRunner struct{}

// Run is a no-op.
func (DryRunner) Run(argv []string) error {
	return nil
}
