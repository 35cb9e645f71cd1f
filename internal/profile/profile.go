// Package profile holds the built-in profile, package, extension, and
// settings tables, plus the Resolver that turns a profile name into the
// component list to install. The tables are package-level constants in
// spirit: nothing mutates them after init.
package profile

import (
	"fmt"
	"sort"
	"strings"
)

// Names of the built-in profiles, in display order.
var builtinOrder = []string{"base", "python", "web", "java", "cpp", "fullstack"}

// builtinComponents maps each built-in profile to its logical components.
var builtinComponents = map[string][]string{
	"base":      {"vscode", "python", "node", "java", "cpp"},
	"python":    {"vscode", "python"},
	"web":       {"vscode", "node"},
	"java":      {"vscode", "java"},
	"cpp":       {"vscode", "cpp"},
	"fullstack": {"vscode", "python", "node", "java", "cpp"},
}

// packageMap maps a logical component to the package name used by each
// package manager. A missing manager entry means the component is not
// installable through that manager and is skipped with a notice.
var packageMap = map[string]map[string]string{
	"vscode": {
		"winget": "Microsoft.VisualStudioCode",
		"choco":  "vscode",
		"scoop":  "vscode",
		"brew":   "visual-studio-code",
		"apt":    "code",
		"dnf":    "code",
		"yum":    "code",
		"pacman": "code",
		"zypper": "code",
	},
	"python": {
		"winget": "Python.Python.3.12",
		"choco":  "python",
		"scoop":  "python",
		"brew":   "python",
		"apt":    "python3",
		"dnf":    "python3",
		"yum":    "python3",
		"pacman": "python",
		"zypper": "python3",
	},
	"java": {
		"winget": "EclipseAdoptium.Temurin.21.JDK",
		"choco":  "temurin21",
		"scoop":  "temurin-lts-jdk",
		"brew":   "openjdk@21",
		"apt":    "openjdk-21-jdk",
		"dnf":    "java-21-openjdk-devel",
		"yum":    "java-21-openjdk-devel",
		"pacman": "jdk-openjdk",
		"zypper": "java-21-openjdk-devel",
	},
	"cpp": {
		"winget": "LLVM.LLVM",
		"choco":  "llvm",
		"scoop":  "llvm",
		"brew":   "llvm",
		"apt":    "build-essential",
		"dnf":    "gcc-c++",
		"yum":    "gcc-c++",
		"pacman": "base-devel",
		"zypper": "gcc-c++",
	},
	"cmake": {
		"winget": "Kitware.CMake",
		"choco":  "cmake",
		"scoop":  "cmake",
		"brew":   "cmake",
		"apt":    "cmake",
		"dnf":    "cmake",
		"yum":    "cmake",
		"pacman": "cmake",
		"zypper": "cmake",
	},
	"node": {
		"winget": "OpenJS.NodeJS.LTS",
		"choco":  "nodejs-lts",
		"scoop":  "nodejs-lts",
		"brew":   "node",
		"apt":    "nodejs",
		"dnf":    "nodejs",
		"yum":    "nodejs",
		"pacman": "nodejs",
		"zypper": "nodejs20",
	},
}

// builtinExtensions maps each built-in profile to its VS Code extension IDs.
var builtinExtensions = map[string][]string{
	"base": {
		"ms-python.python",
		"ms-python.vscode-pylance",
		"vscjava.vscode-java-pack",
		"ms-vscode.cpptools",
		"ms-vscode.cmake-tools",
		"dbaeumer.vscode-eslint",
		"esbenp.prettier-vscode",
	},
	"python": {"ms-python.python", "ms-python.vscode-pylance", "ms-toolsai.jupyter"},
	"web":    {"dbaeumer.vscode-eslint", "esbenp.prettier-vscode"},
	"java":   {"vscjava.vscode-java-pack"},
	"cpp":    {"ms-vscode.cpptools", "ms-vscode.cmake-tools"},
	"fullstack": {
		"ms-python.python",
		"ms-python.vscode-pylance",
		"vscjava.vscode-java-pack",
		"ms-vscode.cpptools",
		"ms-vscode.cmake-tools",
		"dbaeumer.vscode-eslint",
		"esbenp.prettier-vscode",
		"ms-azuretools.vscode-docker",
	},
}

// DefaultProfile is used when no --profile flag is given. It is the
// richest built-in profile.
const DefaultProfile = "fullstack"

// DefaultSettings returns the fixed overlay shallow-merged into the
// user's VS Code settings.json. Existing keys not listed here are
// preserved.
func DefaultSettings() map[string]any {
	return map[string]any{
		"editor.formatOnSave":                        true,
		"files.autoSave":                             "onFocusChange",
		"python.defaultInterpreterPath":              "python",
		"terminal.integrated.defaultProfile.windows": "PowerShell",
		"editor.codeActionsOnSave": map[string]any{
			"source.fixAll":          "explicit",
			"source.organizeImports": "explicit",
		},
	}
}

// PackageFor returns the package name to install for a component under the
// given package manager. ok is false when the component has no mapping for
// that manager, which callers treat as "skip with a notice".
func PackageFor(component, manager string) (string, bool) {
	pkg, ok := packageMap[component][manager]
	return pkg, ok
}

// KnownComponent reports whether the component has a package-map entry.
func KnownComponent(component string) bool {
	_, ok := packageMap[component]
	return ok
}

// Resolver answers profile lookups over the built-in tables plus any
// validated custom profiles added at load time. The built-in tables are
// never mutated; customs live in the Resolver instance only.
type Resolver struct {
	customOrder      []string
	customComponents map[string][]string
	customExtensions map[string][]string
}

// NewResolver returns a Resolver over the built-in profiles only.
func NewResolver() *Resolver {
	return &Resolver{
		customComponents: make(map[string][]string),
		customExtensions: make(map[string][]string),
	}
}

// AddCustom registers a user-defined profile. The name must not shadow a
// built-in or an earlier custom, and every component must exist in the
// package map so installs can resolve it.
func (r *Resolver) AddCustom(name string, components, extensions []string) error {
	if name == "" {
		return fmt.Errorf("custom profile has no name")
	}
	if _, ok := builtinComponents[name]; ok {
		return fmt.Errorf("custom profile %q shadows a built-in profile", name)
	}
	if _, ok := r.customComponents[name]; ok {
		return fmt.Errorf("custom profile %q defined twice", name)
	}
	if len(components) == 0 {
		return fmt.Errorf("custom profile %q lists no components", name)
	}
	for _, c := range components {
		if !KnownComponent(c) {
			return fmt.Errorf("custom profile %q references unknown component %q", name, c)
		}
	}
	r.customOrder = append(r.customOrder, name)
	r.customComponents[name] = append([]string(nil), components...)
	r.customExtensions[name] = append([]string(nil), extensions...)
	return nil
}

// Names returns all profile names: built-ins in display order, then
// customs in registration order.
func (r *Resolver) Names() []string {
	names := append([]string(nil), builtinOrder...)
	return append(names, r.customOrder...)
}

// ComponentsFor resolves a profile name to its ordered component list.
// A profile containing the cpp toolchain gets cmake appended exactly once
// so the compiled-language starter is actually buildable.
func (r *Resolver) ComponentsFor(name string) ([]string, error) {
	base, ok := builtinComponents[name]
	if !ok {
		base, ok = r.customComponents[name]
	}
	if !ok {
		return nil, fmt.Errorf("unknown profile %q, choose one of: %s", name, strings.Join(r.Names(), ", "))
	}

	components := append([]string(nil), base...)
	hasCpp, hasCmake := false, false
	for _, c := range components {
		switch c {
		case "cpp":
			hasCpp = true
		case "cmake":
			hasCmake = true
		}
	}
	if hasCpp && !hasCmake {
		components = append(components, "cmake")
	}
	return components, nil
}

// Extensions returns the VS Code extension IDs for a profile. Unknown
// profiles yield an empty list; the caller has already validated the name
// through ComponentsFor.
func (r *Resolver) Extensions(name string) []string {
	if exts, ok := builtinExtensions[name]; ok {
		return append([]string(nil), exts...)
	}
	return append([]string(nil), r.customExtensions[name]...)
}

// Validate checks the built-in tables for internal consistency: every
// profile's components must resolve to a package-map entry. It exists to
// catch table edits that desynchronize the maps.
func Validate() error {
	for _, name := range builtinOrder {
		components, ok := builtinComponents[name]
		if !ok {
			return fmt.Errorf("profile %q missing from component table", name)
		}
		for _, c := range components {
			if !KnownComponent(c) {
				return fmt.Errorf("profile %q references unmapped component %q", name, c)
			}
		}
	}
	return nil
}

// Managers returns the sorted set of package managers known to the
// package map. Used by tests to cross-check the command builder.
func Managers() []string {
	set := make(map[string]bool)
	for _, byManager := range packageMap {
		for m := range byManager {
			set[m] = true
		}
	}
	managers := make([]string, 0, len(set))
	for m := range set {
		managers = append(managers, m)
	}
	sort.Strings(managers)
	return managers
}
