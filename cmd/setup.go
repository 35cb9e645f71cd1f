package cmd

import (
	"github.com/spf13/cobra"

	"devenv-enabler/internal/installer"
	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/profile"
	"devenv-enabler/internal/scaffold"
	"devenv-enabler/internal/userconfig"
)

var (
	setupProfile     string
	setupOutputDir   string
	setupDryRun      bool
	setupSkipInstall bool
	setupSkipVSCode  bool
	setupSkipSamples bool
	setupInstallFont bool
)

// setupCmd is the composite command: package installs, VS Code
// configuration, and sample generation in one run, each phase
// individually skippable.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install packages, configure VS Code, and generate samples for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := userconfig.NewResolver()
		if err != nil {
			return err
		}
		components, err := resolver.ComponentsFor(setupProfile)
		if err != nil {
			return err
		}

		logger.Info("[INFO] Applying profile: %s\n", setupProfile)

		if !setupSkipInstall {
			if err := installer.InstallComponents(components, installer.NewRunner(setupDryRun)); err != nil {
				return err
			}
		}

		if !setupSkipVSCode {
			if err := configureVSCode(resolver, setupProfile, setupDryRun, setupInstallFont); err != nil {
				return err
			}
		}

		if !setupSkipSamples {
			if err := scaffold.Generate(setupOutputDir, components, false); err != nil {
				return err
			}
		}

		logger.Info("[INFO] Setup complete.\n")
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&setupProfile, "profile", profile.DefaultProfile, "Environment profile to apply")
	setupCmd.Flags().StringVar(&setupOutputDir, "output-dir", "sample-projects", "Directory to create sample projects in")
	setupCmd.Flags().BoolVar(&setupDryRun, "dry-run", false, "Print commands without executing install/configure steps")
	setupCmd.Flags().BoolVar(&setupSkipInstall, "skip-install", false, "Skip package installations")
	setupCmd.Flags().BoolVar(&setupSkipVSCode, "skip-vscode", false, "Skip VS Code setup")
	setupCmd.Flags().BoolVar(&setupSkipSamples, "skip-samples", false, "Skip sample project generation")
	setupCmd.Flags().BoolVar(&setupInstallFont, "install-font", false, "Also install the default coding font")
	rootCmd.AddCommand(setupCmd)
}
