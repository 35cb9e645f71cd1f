package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devenv-enabler/internal/userconfig"
)

// profilesCmd lists every known profile with its resolved component list,
// including custom profiles from profiles.yaml.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List known profiles and their components",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := userconfig.NewResolver()
		if err != nil {
			return err
		}

		fmt.Println("Available profiles:")
		for _, name := range resolver.Names() {
			components, err := resolver.ComponentsFor(name)
			if err != nil {
				return err
			}
			fmt.Printf("- %s: %s\n", name, strings.Join(components, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
