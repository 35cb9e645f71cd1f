package installer

import (
	"errors"
	"reflect"
	"testing"
)

// recorder is a Runner that records every argv it is asked to run.
type recorder struct {
	commands [][]string
}

func (r *recorder) Run(argv []string) error {
	r.commands = append(r.commands, argv)
	return nil
}

func TestInstallWithManager_BuildsCommands(t *testing.T) {
	rec := &recorder{}
	InstallWithManager([]string{"vscode", "python"}, "brew", rec)

	want := [][]string{
		{"brew", "install", "visual-studio-code"},
		{"brew", "install", "python"},
	}
	if !reflect.DeepEqual(rec.commands, want) {
		t.Errorf("recorded commands = %v, want %v", rec.commands, want)
	}
}

func TestInstallWithManager_SkipsUnmappedComponents(t *testing.T) {
	rec := &recorder{}
	// "docker" has no package mapping at all; it must be skipped, and the
	// following component must still install.
	InstallWithManager([]string{"docker", "cmake"}, "apt", rec)

	want := [][]string{
		{"sudo", "apt", "install", "-y", "cmake"},
	}
	if !reflect.DeepEqual(rec.commands, want) {
		t.Errorf("recorded commands = %v, want %v", rec.commands, want)
	}
}

// failing is a Runner whose every command fails.
type failing struct {
	calls int
}

func (f *failing) Run(argv []string) error {
	f.calls++
	return errors.New("boom")
}

func TestInstallWithManager_ToleratesFailures(t *testing.T) {
	f := &failing{}
	// Both installs fail; the loop must still visit both.
	InstallWithManager([]string{"vscode", "node"}, "dnf", f)
	if f.calls != 2 {
		t.Errorf("runner called %d times, want 2", f.calls)
	}
}

func TestInstallWithManager_DryRunExecutesNothing(t *testing.T) {
	// DryRunner through the real loop: nothing observable happens, and
	// nothing panics even for commands that would need root.
	InstallWithManager([]string{"vscode", "python", "node", "java", "cpp", "cmake"}, "pacman", NewRunner(true))
}
