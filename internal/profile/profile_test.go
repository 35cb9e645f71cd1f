package profile

import (
	"reflect"
	"testing"
)

func TestComponentsFor_Builtins(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name string
		want []string
	}{
		{"python", []string{"vscode", "python"}},
		{"web", []string{"vscode", "node"}},
		{"java", []string{"vscode", "java"}},
		{"cpp", []string{"vscode", "cpp", "cmake"}},
		{"base", []string{"vscode", "python", "node", "java", "cpp", "cmake"}},
		{"fullstack", []string{"vscode", "python", "node", "java", "cpp", "cmake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ComponentsFor(tt.name)
			if err != nil {
				t.Fatalf("ComponentsFor(%q) returned error: %v", tt.name, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComponentsFor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestComponentsFor_UnknownProfile(t *testing.T) {
	r := NewResolver()
	if _, err := r.ComponentsFor("rustacean"); err == nil {
		t.Fatal("ComponentsFor with unknown profile should return error")
	}
}

func TestComponentsFor_CmakeAppendedExactlyOnce(t *testing.T) {
	r := NewResolver()
	if err := r.AddCustom("embedded", []string{"vscode", "cpp", "cmake"}, nil); err != nil {
		t.Fatalf("AddCustom failed: %v", err)
	}

	got, err := r.ComponentsFor("embedded")
	if err != nil {
		t.Fatalf("ComponentsFor failed: %v", err)
	}
	count := 0
	for _, c := range got {
		if c == "cmake" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("cmake appears %d times in %v, want exactly 1", count, got)
	}
}

func TestComponentsFor_EveryProfileComponentIsMapped(t *testing.T) {
	r := NewResolver()
	for _, name := range r.Names() {
		components, err := r.ComponentsFor(name)
		if err != nil {
			t.Fatalf("ComponentsFor(%q) returned error: %v", name, err)
		}
		if len(components) == 0 {
			t.Errorf("profile %q resolves to an empty component list", name)
		}
		for _, c := range components {
			if !KnownComponent(c) {
				t.Errorf("profile %q component %q has no package mapping", name, c)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in tables failed validation: %v", err)
	}
}

func TestPackageFor(t *testing.T) {
	tests := []struct {
		component string
		manager   string
		want      string
		ok        bool
	}{
		{"vscode", "brew", "visual-studio-code", true},
		{"python", "apt", "python3", true},
		{"cpp", "winget", "LLVM.LLVM", true},
		{"node", "zypper", "nodejs20", true},
		{"vscode", "nix", "", false},
		{"docker", "brew", "", false},
	}

	for _, tt := range tests {
		got, ok := PackageFor(tt.component, tt.manager)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PackageFor(%q, %q) = (%q, %v), want (%q, %v)",
				tt.component, tt.manager, got, ok, tt.want, tt.ok)
		}
	}
}

func TestManagers(t *testing.T) {
	want := []string{"apt", "brew", "choco", "dnf", "pacman", "scoop", "winget", "yum", "zypper"}
	if got := Managers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Managers() = %v, want %v", got, want)
	}
}

func TestAddCustom_Validation(t *testing.T) {
	tests := []struct {
		name       string
		profile    string
		components []string
	}{
		{"empty name", "", []string{"vscode"}},
		{"shadows builtin", "python", []string{"vscode"}},
		{"no components", "empty", nil},
		{"unknown component", "bad", []string{"vscode", "docker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver()
			if err := r.AddCustom(tt.profile, tt.components, nil); err == nil {
				t.Errorf("AddCustom(%q, %v) should have failed", tt.profile, tt.components)
			}
		})
	}
}

func TestAddCustom_DuplicateRejected(t *testing.T) {
	r := NewResolver()
	if err := r.AddCustom("data", []string{"vscode", "python"}, []string{"ms-toolsai.jupyter"}); err != nil {
		t.Fatalf("first AddCustom failed: %v", err)
	}
	if err := r.AddCustom("data", []string{"vscode"}, nil); err == nil {
		t.Fatal("duplicate AddCustom should have failed")
	}

	exts := r.Extensions("data")
	if len(exts) != 1 || exts[0] != "ms-toolsai.jupyter" {
		t.Errorf("Extensions(\"data\") = %v, want [ms-toolsai.jupyter]", exts)
	}
}

func TestExtensions_Builtin(t *testing.T) {
	r := NewResolver()
	exts := r.Extensions("fullstack")
	found := false
	for _, e := range exts {
		if e == "ms-azuretools.vscode-docker" {
			found = true
		}
	}
	if !found {
		t.Errorf("fullstack extensions %v missing docker extension", exts)
	}
	if got := r.Extensions("nonexistent"); len(got) != 0 {
		t.Errorf("Extensions for unknown profile = %v, want empty", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	overlay := DefaultSettings()
	if overlay["editor.formatOnSave"] != true {
		t.Error("overlay missing editor.formatOnSave = true")
	}
	if overlay["files.autoSave"] != "onFocusChange" {
		t.Error("overlay missing files.autoSave")
	}
	actions, ok := overlay["editor.codeActionsOnSave"].(map[string]any)
	if !ok || actions["source.fixAll"] != "explicit" {
		t.Errorf("overlay codeActionsOnSave = %v, want nested map with source.fixAll", overlay["editor.codeActionsOnSave"])
	}
}
