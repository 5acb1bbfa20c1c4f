package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calderhouse/menuview/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "menuview",
	Short: "Interactive menu sites from a JSON catalog",
	Long: `menuview turns a hierarchical menu catalog (categories, sections,
items) into an interactive HTML site with category navigation,
expandable item details and free-text search. It can emit a fully
static site or serve the rendered pages live.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".menuview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the configured config file and validates it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
