// Package platform probes the host environment: operating system family,
// first available package manager, and the well-known paths the tool
// writes to. Detection is a pure lookup over GOOS, PATH, and env vars.
package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"devenv-enabler/internal/logger"
)

// Package manager probe order per OS family. First resolvable wins.
var managersByOS = map[string][]string{
	"windows": {"winget", "choco", "scoop"},
	"macos":   {"brew"},
	"linux":   {"apt", "dnf", "yum", "pacman", "zypper"},
}

// DetectOS maps the runtime platform identifier to one of
// "windows", "macos", or "linux".
func DetectOS() string {
	return osFromPlatform(runtime.GOOS)
}

// osFromPlatform normalizes a platform identifier: anything containing
// "darwin" is macos, anything starting with "win" is windows, and
// everything else is treated as linux.
func osFromPlatform(name string) string {
	name = strings.ToLower(name)
	if strings.Contains(name, "darwin") {
		return "macos"
	}
	if strings.HasPrefix(name, "win") {
		return "windows"
	}
	return "linux"
}

// CommandExists reports whether an executable is resolvable on PATH.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// DetectPackageManager returns the first package manager resolvable on
// PATH for the given OS family, or "" when none is found.
func DetectPackageManager(osName string) string {
	return detectManagerWith(osName, CommandExists)
}

// detectManagerWith is DetectPackageManager with the PATH probe injected,
// so the fixed priority order is testable without touching the real PATH.
func detectManagerWith(osName string, exists func(string) bool) string {
	for _, manager := range managersByOS[osName] {
		if exists(manager) {
			logger.Debug("[DEBUG] Found package manager: %s\n", manager)
			return manager
		}
	}
	return ""
}

// VSCodeSettingsPath returns the per-user VS Code settings.json location
// for the current OS.
func VSCodeSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return settingsPathFor(DetectOS(), home, os.Getenv("APPDATA")), nil
}

// settingsPathFor computes the settings.json path from explicit inputs.
// On Windows the roaming app-data dir is preferred, falling back to the
// conventional location under the home directory.
func settingsPathFor(osName, home, appData string) string {
	switch osName {
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Code", "User", "settings.json")
	case "macos":
		return filepath.Join(home, "Library", "Application Support", "Code", "User", "settings.json")
	default:
		return filepath.Join(home, ".config", "Code", "User", "settings.json")
	}
}

// FontsDir returns the per-user font directory for the current OS.
// Fonts dropped here are picked up without elevation.
func FontsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return fontsDirFor(DetectOS(), home, os.Getenv("LOCALAPPDATA")), nil
}

// fontsDirFor computes the user font directory from explicit inputs.
func fontsDirFor(osName, home, localAppData string) string {
	switch osName {
	case "windows":
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(localAppData, "Microsoft", "Windows", "Fonts")
	case "macos":
		return filepath.Join(home, "Library", "Fonts")
	default:
		return filepath.Join(home, ".local", "share", "fonts")
	}
}
