package vscode

import (
	"strings"

	"devenv-enabler/internal/installer"
	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/platform"
)

// InstallExtensions installs each extension through the `code` CLI. When
// the CLI is not on PATH the whole phase is skipped with a notice rather
// than failing the run. Individual extension failures are tolerated.
func InstallExtensions(extensions []string, r installer.Runner) {
	if !platform.CommandExists("code") {
		logger.Warn("[WARN] VS Code CLI not found. Ensure 'code' is in PATH before extension setup.\n")
		return
	}

	for _, extension := range extensions {
		argv := []string{"code", "--install-extension", extension, "--force"}
		logger.Info("[INFO] Installing VS Code extension %s: %s\n", extension, strings.Join(argv, " "))
		if err := r.Run(argv); err != nil {
			logger.Warn("[WARN] Extension %s did not install cleanly: %v\n", extension, err)
		}
	}
}
