package cmd

import (
	"github.com/spf13/cobra"

	"devenv-enabler/internal/installer"
	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/platform"
	"devenv-enabler/internal/profile"
	"devenv-enabler/internal/userconfig"
	"devenv-enabler/internal/vscode"
)

var (
	vscodeProfile     string
	vscodeDryRun      bool
	vscodeInstallFont bool
)

// configureVSCodeCmd installs the profile's VS Code extensions and merges
// the default editor settings. With --install-font it also provisions the
// default coding font from its GitHub release.
var configureVSCodeCmd = &cobra.Command{
	Use:   "configure-vscode",
	Short: "Install VS Code extensions and default settings for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := userconfig.NewResolver()
		if err != nil {
			return err
		}
		// Validates the profile name before any side effect.
		if _, err := resolver.ComponentsFor(vscodeProfile); err != nil {
			return err
		}

		return configureVSCode(resolver, vscodeProfile, vscodeDryRun, vscodeInstallFont)
	},
}

// configureVSCode runs the VS Code phase: extensions, optional font, then
// the settings merge (skipped in dry-run). Shared with the setup command.
func configureVSCode(resolver *profile.Resolver, name string, dryRun, installFont bool) error {
	r := installer.NewRunner(dryRun)
	vscode.InstallExtensions(resolver.Extensions(name), r)

	if installFont {
		if err := vscode.InstallFont(vscode.DefaultFont, dryRun); err != nil {
			// Fonts are a nicety, not worth failing the run over.
			logger.Warn("[WARN] Font install failed: %v\n", err)
		}
	}

	if dryRun {
		return nil
	}
	settingsPath, err := platform.VSCodeSettingsPath()
	if err != nil {
		return err
	}
	if err := vscode.MergeSettings(settingsPath, profile.DefaultSettings()); err != nil {
		return err
	}
	logger.Info("[INFO] Updated VS Code settings: %s\n", settingsPath)
	return nil
}

func init() {
	configureVSCodeCmd.Flags().StringVar(&vscodeProfile, "profile", profile.DefaultProfile, "Profile to select extension set")
	configureVSCodeCmd.Flags().BoolVar(&vscodeDryRun, "dry-run", false, "Print extension commands without executing")
	configureVSCodeCmd.Flags().BoolVar(&vscodeInstallFont, "install-font", false, "Also install the default coding font")
	rootCmd.AddCommand(configureVSCodeCmd)
}
