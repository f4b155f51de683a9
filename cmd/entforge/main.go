package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/entforge/internal/cli"
	"github.com/example/entforge/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "entforge",
		Short:   "entforge - Doctrine entity scaffolding",
		Version: version.String(),
		Long: `entforge generates Doctrine ORM entity classes and mapping metadata
for a PHP project, from an interactive field wizard or a compact field list.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.BundlesCmd())
	rootCmd.AddCommand(cli.EntityCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
