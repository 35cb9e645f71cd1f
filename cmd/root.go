package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"devenv-enabler/internal/logger"
	"devenv-enabler/internal/profile"
	"devenv-enabler/internal/userconfig"
)

// debug toggles debug logging via the global --debug flag.
var debug bool

// rootCmd is the base command for the devenv-enabler CLI.
var rootCmd = &cobra.Command{
	Use:   "devenv-enabler",
	Short: "Cross-platform dev environment enabler",

	// PersistentPreRun runs before any subcommand: set up logging and
	// provision the tool's config directory.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
		if _, err := userconfig.EnsureConfigDir(); err != nil {
			logger.Debug("[DEBUG] Could not provision config directory: %v\n", err)
		}
	},

	// Runtime errors are reported by cobra already; the usage text would
	// only bury them.
	SilenceUsage: true,
}

// Execute registers global flags and runs the selected subcommand.
// Command errors (unknown profile, no package manager) exit non-zero.
func Execute() {
	// A table inconsistency is a bug in this binary, not a user error.
	if err := profile.Validate(); err != nil {
		panic("invalid built-in profile tables: " + err.Error())
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
