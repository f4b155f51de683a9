package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/entforge/internal/autocomplete"
	"github.com/example/entforge/internal/config"
	"github.com/example/entforge/internal/core/field"
	"github.com/example/entforge/internal/registry"
	"github.com/example/entforge/internal/scaffold"
	"github.com/example/entforge/internal/wizard"
)

// EntityCmd returns the entity command
func EntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Generate a new Doctrine entity",
		Long: `Generate a Doctrine entity class and its mapping metadata.

Without --entity and --fields the command runs an interactive wizard
that prompts for the entity shorthand, the mapping format and each
field in turn.

Examples:
  entforge entity
  entforge entity --entity AcmeBlog:Post --fields "title:string(100) body:text" --format xml
  entforge entity --entity AcmeBlog:Blog/Comment --no-interaction`,
		RunE: runEntity,
	}

	cmd.Flags().String("entity", "", "Entity shorthand (Bundle:Path/To/Entity)")
	cmd.Flags().String("fields", "", "Field list (e.g. 'title:string(100) body:text')")
	cmd.Flags().String("format", "", "Mapping format: annotation, php, xml or yml")
	cmd.Flags().Bool("no-interaction", false, "Never ask questions; requires --entity")
	cmd.Flags().Bool("dry-run", false, "Preview without writing files")

	return cmd
}

func runEntity(cmd *cobra.Command, args []string) error {
	shorthand, _ := cmd.Flags().GetString("entity")
	fieldsStr, _ := cmd.Flags().GetString("fields")
	format, _ := cmd.Flags().GetString("format")
	noInteraction, _ := cmd.Flags().GetBool("no-interaction")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(root)
	if err != nil {
		return fmt.Errorf("no entforge config found (run 'entforge init' first): %w", err)
	}

	reg := newRegistry(cfg)
	source := autocomplete.New(reg, root)
	gen := scaffold.NewGenerator(reg)
	prompter := wizard.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	// Interactive mode: interaction enabled and a required option absent.
	interactive := !noInteraction && (shorthand == "" || fieldsStr == "")

	// Resolve the target entity. In interactive mode a bad shorthand
	// re-prompts instead of aborting.
	var bundle registry.Bundle
	var entity string
	switch {
	case shorthand != "":
		bundle, entity, err = reg.Resolve(shorthand)
		if err != nil {
			return err
		}
	case !interactive:
		return fmt.Errorf("--entity is required with --no-interaction")
	default:
		prompter.Say("")
		if known := source.Suggestions(true); len(known) > 0 {
			prompter.Say("Known entities: %s", strings.Join(known, ", "))
		}
		for {
			answer := prompter.Ask("The Entity shortcut name", "")
			bundle, entity, err = reg.Resolve(answer)
			if err == nil {
				break
			}
			if prompter.EOF() {
				return fmt.Errorf("input ended before a valid entity shorthand was given: %w", err)
			}
			prompter.Errorf("%v", err)
		}
	}

	if format == "" {
		format = cfg.DefaultFormat
	}
	if interactive && !cmd.Flags().Changed("format") {
		for {
			answer := prompter.Ask("Configuration format (php, xml, yml, or annotation)", format)
			if !scaffold.ValidFormat(answer) {
				if prompter.EOF() {
					return fmt.Errorf("input ended before a valid mapping format was given")
				}
				prompter.Errorf("invalid format %q", answer)
				continue
			}
			format = answer
			break
		}
	} else if !scaffold.ValidFormat(format) {
		return fmt.Errorf("unknown mapping format %q (expected one of: %s)", format, strings.Join(scaffold.Formats, ", "))
	}

	var spec *field.Spec
	switch {
	case fieldsStr != "":
		spec = scaffold.ParseFields(fieldsStr)
	case interactive:
		w := &wizard.Wizard{
			Prompter: prompter,
			Reserved: gen.IsReservedKeyword,
			Suggest:  func() []string { return source.Suggestions(true) },
		}
		spec = w.Run()
	default:
		spec = field.NewSpec()
	}

	result, err := gen.Generate(bundle, entity, format, spec)
	if err != nil {
		return fmt.Errorf("failed to generate entity: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Files to create:")
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f.Path)
	}
	fmt.Fprintln(out)

	if dryRun {
		fmt.Fprintln(out, "(dry-run mode - no files written)")
		fmt.Fprintln(out)
		for _, f := range result.Files {
			fmt.Fprintf(out, "--- %s ---\n", f.Path)
			fmt.Fprintln(out, f.Content)
		}
		return nil
	}

	if _, err := os.Stat(filepath.Join(root, result.EntityPath)); err == nil {
		return fmt.Errorf("entity %s already exists", result.EntityPath)
	}

	if interactive && !prompter.Confirm("Do you confirm generation?", true) {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	for _, f := range result.Files {
		if err := writeGeneratedFile(root, f); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		fmt.Fprintf(out, "%s Created %s\n", color.GreenString("✓"), f.Path)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Entity:     %s\n", result.EntityPath)
	fmt.Fprintf(out, "Repository: %s\n", result.RepositoryPath)
	if result.MappingPath != "" {
		fmt.Fprintf(out, "Mapping:    %s\n", result.MappingPath)
	}
	return nil
}

// writeGeneratedFile writes one generated file under the project root.
func writeGeneratedFile(root string, f scaffold.GeneratedFile) error {
	path := filepath.Join(root, f.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(f.Content), 0644)
}

// newRegistry builds the bundle registry from config.
func newRegistry(cfg *config.Config) *registry.Registry {
	bundles := make([]registry.Bundle, 0, len(cfg.Bundles))
	for _, b := range cfg.Bundles {
		bundles = append(bundles, registry.Bundle{Alias: b.Alias, Namespace: b.Namespace, Dir: b.Dir})
	}
	return registry.New(bundles)
}
