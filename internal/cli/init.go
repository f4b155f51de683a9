package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/entforge/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an entforge config in the current directory",
		Long: `Create .entforge/config.json in the current directory.

The config holds the registered bundles and the default mapping format.
Register bundles afterwards with 'entforge bundles add'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			dir, err := os.Getwd()
			if err != nil {
				return err
			}

			if _, err := config.LoadConfig(dir); err == nil && !force {
				return fmt.Errorf("config already exists (use --force to overwrite)")
			}

			if err := config.SaveConfig(dir, config.DefaultConfig()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Created .entforge/config.json")
			fmt.Fprintln(cmd.OutOrStdout(), "Register bundles with 'entforge bundles add'.")
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}
