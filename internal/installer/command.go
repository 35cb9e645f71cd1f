package installer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedManager signals that BuildInstallCommand was handed a
// package manager outside the known set. The environment probe only ever
// returns known managers, so hitting this indicates a table bug.
var ErrUnsupportedManager = errors.New("unsupported package manager")

// installTemplates holds the argv prefix per package manager. The package
// name is appended at the position each manager expects. Every template
// carries the manager's silent/non-interactive flags; the Linux managers
// are elevated through sudo.
var installTemplates = map[string]struct {
	prefix []string
	suffix []string
}{
	"winget": {prefix: []string{"winget", "install", "--id"}, suffix: []string{"--silent", "--accept-source-agreements", "--accept-package-agreements"}},
	"choco":  {prefix: []string{"choco", "install"}, suffix: []string{"-y"}},
	"scoop":  {prefix: []string{"scoop", "install"}},
	"brew":   {prefix: []string{"brew", "install"}},
	"apt":    {prefix: []string{"sudo", "apt", "install", "-y"}},
	"dnf":    {prefix: []string{"sudo", "dnf", "install", "-y"}},
	"yum":    {prefix: []string{"sudo", "yum", "install", "-y"}},
	"pacman": {prefix: []string{"sudo", "pacman", "-S", "--noconfirm"}},
	"zypper": {prefix: []string{"sudo", "zypper", "install", "-y"}},
}

// BuildInstallCommand returns the full argument vector that installs the
// given package through the given package manager.
func BuildInstallCommand(manager, pkg string) ([]string, error) {
	tmpl, ok := installTemplates[manager]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedManager, manager)
	}
	argv := append([]string(nil), tmpl.prefix...)
	argv = append(argv, pkg)
	argv = append(argv, tmpl.suffix...)
	return argv, nil
}
