// Package installer builds and executes the package install commands for
// a resolved component list. Failures of individual installs are logged
// and tolerated so one broken package does not sink the whole profile.
package installer

import (
	"errors"
	"strings"

	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/platform"
	"devenv-enabler/internal/profile"
)

// ErrNoPackageManager is returned when the environment probe finds no
// supported package manager on the machine. This is the one install
// failure that aborts the run with a non-zero exit.
var ErrNoPackageManager = errors.New("no supported package manager found on this machine")

// InstallComponents detects the OS and package manager, then installs
// each component's package through the detected manager. Components with
// no mapping for the manager are skipped with a notice. Returns an error
// only when no package manager is available.
func InstallComponents(components []string, r Runner) error {
	osName := platform.DetectOS()
	manager := platform.DetectPackageManager(osName)
	if manager == "" {
		return ErrNoPackageManager
	}

	logger.Info("[INFO] Detected OS: %s\n", osName)
	logger.Info("[INFO] Using package manager: %s\n", manager)

	InstallWithManager(components, manager, r)
	return nil
}

// InstallWithManager installs each component through the given manager.
// Split out from InstallComponents so the loop is testable without a
// real package manager on PATH.
func InstallWithManager(components []string, manager string, r Runner) {
	for _, component := range components {
		pkg, ok := profile.PackageFor(component, manager)
		if !ok {
			logger.Warn("[WARN] Skipping %s: no package mapping for %s\n", component, manager)
			continue
		}

		argv, err := BuildInstallCommand(manager, pkg)
		if err != nil {
			// Only reachable if the probe and the templates disagree.
			logger.Error("[ERROR] Cannot build install command for %s: %v\n", component, err)
			continue
		}

		logger.Info("[INFO] Installing %s: %s\n", component, strings.Join(argv, " "))
		if err := r.Run(argv); err != nil {
			// Tolerated: the remaining components still get their chance.
			logger.Warn("[WARN] Install of %s did not complete cleanly: %v\n", component, err)
		}
	}
}
