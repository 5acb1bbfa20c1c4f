package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calderhouse/menuview/internal/progress"
	"github.com/calderhouse/menuview/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static menu site",
	Long:  `Renders the catalog into a self-contained static HTML site with category pages, navigation and client-side search.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	if verbose {
		fmt.Printf("Catalog: %s\nOutput:  %s\n", cfg.Catalog, outputDir)
	}

	gen := site.NewGenerator(cfg.Catalog, outputDir, cfg.Title, cfg.DefaultCategory)
	gen.AboutPath = cfg.About
	gen.Reporter = progress.NewReporter()

	pageCount, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
