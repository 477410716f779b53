package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wenqy/skillport/internal/config"
	"github.com/wenqy/skillport/internal/convert"
	"github.com/wenqy/skillport/internal/glossary"
	"github.com/wenqy/skillport/internal/rewrite"
	"github.com/wenqy/skillport/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "skillport [source]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Port Claude skill documents to Gemini CLI system prompts",
	Long: `Converts markdown skill documents (SKILL.md with YAML-like frontmatter)
into Gemini CLI system-prompt files, optionally inserting Chinese glosses
and translations next to the English text.

Each skill becomes <output>/<name>.md, alongside an INDEX.md, a README.md
usage guide, and switch-skill launcher scripts.`,
	RunE: runConvert,
}

var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Interactively select a converted skill",
	Long: `Browse converted skills in the output directory and print the export
line for the selection:

  eval "$(skillport pick)"`,
	RunE: runPick,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(pickCmd)

	rootCmd.PersistentFlags().StringP("source", "s", "", "Skill source directory (one subdirectory per skill)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory for converted prompts")
	rootCmd.PersistentFlags().String("variant", "", "Conversion variant: bilingual, plain")
	rootCmd.PersistentFlags().String("glossary", "", "YAML glossary file merged over the built-in tables")

	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("variant", rootCmd.PersistentFlags().Lookup("variant"))
	viper.BindPFlag("glossary", rootCmd.PersistentFlags().Lookup("glossary"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		config.SetSource(args[0])
	}

	source := config.GetSource()
	if source == "" {
		return fmt.Errorf("no source directory: set --source or SKILLPORT_SOURCE")
	}

	variant, ok := rewrite.ParseVariant(config.GetVariant())
	if !ok {
		return fmt.Errorf("unknown variant %q (supported: bilingual, plain)", config.GetVariant())
	}

	tables := glossary.Default()
	if path := config.GetGlossary(); path != "" {
		var err error
		if tables, err = glossary.Load(path); err != nil {
			return err
		}
	}

	converter := &convert.Converter{
		SourceDir: source,
		OutputDir: config.GetOutput(),
		Variant:   variant,
		Glossary:  tables,
		Progress:  os.Stdout,
	}

	fmt.Printf("Converting skills from %s\n", source)
	result, err := converter.Run()
	if err != nil {
		return err
	}

	fmt.Printf("\nConverted %d skills to %s\n", result.Count(), config.GetOutput())
	if result.Count() == 0 {
		// A silent zero used to hide a mistyped source path.
		return fmt.Errorf("no skill documents found under %s", source)
	}
	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		config.SetOutput(args[0])
	}

	items, err := ui.LoadItems(config.GetOutput())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no converted skills in %s (run skillport first)", config.GetOutput())
	}

	selected, err := ui.Run(items)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil // cancelled
	}

	fmt.Printf("export GEMINI_SYSTEM_MD=%q\n", selected.Path)
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
