// Package userconfig manages the tool's own config directory under the
// user's home and the optional profiles.yaml that defines custom
// profiles on top of the built-in tables.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/profile"
)

// CustomProfile is one user-defined profile from profiles.yaml.
type CustomProfile struct {
	Name       string   `yaml:"name"`
	Components []string `yaml:"components"`
	Extensions []string `yaml:"extensions"`
}

// Dir returns the tool's config directory (~/.config/dev_environment_enabler).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dev_environment_enabler"), nil
}

// EnsureConfigDir creates the config directory if needed and returns the
// path of config.json inside it. The file itself is provisioned for
// future use and not written by any current flow.
func EnsureConfigDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}
	return filepath.Join(dir, "config.json"), nil
}

// ProfilesPath returns the location of the optional custom profiles file.
func ProfilesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.yaml"), nil
}

// LoadProfiles reads custom profile definitions from the YAML file at
// path. A missing file is not an error and yields no profiles.
func LoadProfiles(path string) ([]CustomProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var wrapper struct {
		Profiles []CustomProfile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return wrapper.Profiles, nil
}

// NewResolver builds a profile resolver over the built-in tables plus any
// custom profiles found in the config directory. Invalid custom profiles
// are rejected with an error naming the offending entry.
func NewResolver() (*profile.Resolver, error) {
	resolver := profile.NewResolver()

	path, err := ProfilesPath()
	if err != nil {
		// No home directory: run with built-ins only.
		logger.Debug("[DEBUG] Cannot locate config directory: %v\n", err)
		return resolver, nil
	}

	customs, err := LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	for _, c := range customs {
		if err := resolver.AddCustom(c.Name, c.Components, c.Extensions); err != nil {
			return nil, fmt.Errorf("invalid profile in %s: %w", path, err)
		}
	}
	if len(customs) > 0 {
		logger.Debug("[DEBUG] Loaded %d custom profile(s) from %s\n", len(customs), path)
	}
	return resolver, nil
}
