package cmd

import (
	"github.com/spf13/cobra"

	"devenv-enabler/internal/profile"
	"devenv-enabler/internal/scaffold"
	"devenv-enabler/internal/userconfig"
)

var (
	samplesProfile   string
	samplesOutputDir string
	samplesForce     bool
)

// initSamplesCmd generates starter projects for the languages in a
// profile. Existing files are kept unless --force is given.
var initSamplesCmd = &cobra.Command{
	Use:   "init-samples",
	Short: "Generate starter projects for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := userconfig.NewResolver()
		if err != nil {
			return err
		}
		components, err := resolver.ComponentsFor(samplesProfile)
		if err != nil {
			return err
		}
		return scaffold.Generate(samplesOutputDir, components, samplesForce)
	},
}

func init() {
	initSamplesCmd.Flags().StringVar(&samplesProfile, "profile", profile.DefaultProfile, "Profile that determines sample projects")
	initSamplesCmd.Flags().StringVar(&samplesOutputDir, "output-dir", "sample-projects", "Directory to create sample projects in")
	initSamplesCmd.Flags().BoolVar(&samplesForce, "force", false, "Overwrite existing sample files")
	rootCmd.AddCommand(initSamplesCmd)
}
