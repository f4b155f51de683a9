package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/entforge/internal/config"
)

// BundlesCmd returns the bundles command
func BundlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "Manage registered bundles",
		Long:  `List and register the bundles entity shorthand notation resolves against.`,
	}

	cmd.AddCommand(bundlesListCmd())
	cmd.AddCommand(bundlesAddCmd())

	return cmd
}

func bundlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil {
				return fmt.Errorf("no entforge config found (run 'entforge init' first): %w", err)
			}

			if len(cfg.Bundles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bundles registered.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ALIAS\tNAMESPACE\tDIR")
			for _, b := range newRegistry(cfg).Bundles() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Alias, b.Namespace, b.Dir)
			}
			return w.Flush()
		},
	}
}

func bundlesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [alias]",
		Short: "Register a bundle",
		Long: `Register a bundle alias for shorthand notation.

Examples:
  entforge bundles add AcmeBlog --namespace 'Acme\BlogBundle' --dir src/Acme/BlogBundle`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]
			namespace, _ := cmd.Flags().GetString("namespace")
			bundleDir, _ := cmd.Flags().GetString("dir")
			if namespace == "" || bundleDir == "" {
				return fmt.Errorf("--namespace and --dir are required")
			}

			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil {
				return fmt.Errorf("no entforge config found (run 'entforge init' first): %w", err)
			}

			entry := config.Bundle{Alias: alias, Namespace: namespace, Dir: bundleDir}
			replaced := false
			for i, b := range cfg.Bundles {
				if b.Alias == alias {
					cfg.Bundles[i] = entry
					replaced = true
					break
				}
			}
			if !replaced {
				cfg.Bundles = append(cfg.Bundles, entry)
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Registered bundle %s (%s)\n", alias, namespace)
			return nil
		},
	}

	cmd.Flags().String("namespace", "", `Bundle namespace root (e.g. Acme\BlogBundle)`)
	cmd.Flags().String("dir", "", "Bundle directory relative to the project root")
	return cmd
}
