// Package vscode configures the user's VS Code installation: extension
// installs through the `code` CLI, a shallow merge of default settings
// into settings.json, and optional provisioning of a coding font.
package vscode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"devenv-enabler/internal/logger"
)

// MergeSettings shallow-merges the overlay into the JSON object stored at
// path, creating parent directories as needed. Keys present in the
// overlay overwrite existing values; all other keys are preserved. A
// missing or malformed file is treated as an empty object rather than an
// error, so a corrupt settings.json never blocks setup. The write uses
// stable 2-space indentation, making the merge idempotent byte-for-byte.
func MergeSettings(path string, overlay map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	current := make(map[string]any)
	if raw, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(raw, &current); err != nil {
			logger.Warn("[WARN] Existing settings at %s are not valid JSON, starting fresh\n", path)
			current = make(map[string]any)
		}
	}

	for key, value := range overlay {
		current[key] = value
	}

	out, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}
