package cmd

import (
	"github.com/spf13/cobra"

	"devenv-enabler/internal/installer"
	"devenv-enabler/internal/profile"
	"devenv-enabler/internal/userconfig"
)

var (
	installProfile string
	installDryRun  bool
)

// installCmd installs the packages of a profile through the first
// package manager found on the machine.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a profile's packages with the detected package manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := userconfig.NewResolver()
		if err != nil {
			return err
		}
		components, err := resolver.ComponentsFor(installProfile)
		if err != nil {
			return err
		}
		return installer.InstallComponents(components, installer.NewRunner(installDryRun))
	},
}

func init() {
	installCmd.Flags().StringVar(&installProfile, "profile", profile.DefaultProfile, "Environment profile to install")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "Print commands without executing")
	rootCmd.AddCommand(installCmd)
}
