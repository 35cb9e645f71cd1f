package installer

import (
	"errors"
	"reflect"
	"testing"

	"devenv-enabler/internal/profile"
)

func TestBuildInstallCommand(t *testing.T) {
	tests := []struct {
		manager string
		want    []string
	}{
		{"winget", []string{"winget", "install", "--id", "pkg", "--silent", "--accept-source-agreements", "--accept-package-agreements"}},
		{"choco", []string{"choco", "install", "pkg", "-y"}},
		{"scoop", []string{"scoop", "install", "pkg"}},
		{"brew", []string{"brew", "install", "pkg"}},
		{"apt", []string{"sudo", "apt", "install", "-y", "pkg"}},
		{"dnf", []string{"sudo", "dnf", "install", "-y", "pkg"}},
		{"yum", []string{"sudo", "yum", "install", "-y", "pkg"}},
		{"pacman", []string{"sudo", "pacman", "-S", "--noconfirm", "pkg"}},
		{"zypper", []string{"sudo", "zypper", "install", "-y", "pkg"}},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			got, err := BuildInstallCommand(tt.manager, "pkg")
			if err != nil {
				t.Fatalf("BuildInstallCommand(%q) returned error: %v", tt.manager, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildInstallCommand(%q) = %v, want %v", tt.manager, got, tt.want)
			}
		})
	}
}

func TestBuildInstallCommand_UnsupportedManager(t *testing.T) {
	_, err := BuildInstallCommand("nix", "pkg")
	if !errors.Is(err, ErrUnsupportedManager) {
		t.Fatalf("error = %v, want ErrUnsupportedManager", err)
	}
}

// Every manager the probe can return must have an install template, and
// every template must be for a manager the package map knows.
func TestTemplatesCoverKnownManagers(t *testing.T) {
	for _, manager := range profile.Managers() {
		if _, ok := installTemplates[manager]; !ok {
			t.Errorf("manager %q has packages but no install template", manager)
		}
	}
	if len(installTemplates) != len(profile.Managers()) {
		t.Errorf("install templates cover %d managers, package map covers %d",
			len(installTemplates), len(profile.Managers()))
	}
}
