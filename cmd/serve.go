package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calderhouse/menuview/internal/menu"
	"github.com/calderhouse/menuview/internal/server"
	"github.com/calderhouse/menuview/internal/site"
	"github.com/calderhouse/menuview/internal/stats"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the menu site live",
	Long:  `Starts an HTTP server rendering the menu site from the catalog, with live reload when the catalog file changes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	// A catalog that cannot be loaded is fatal for the session: there is
	// nothing to serve and no recovery path short of fixing the file.
	doc, err := menu.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	aboutHTML, err := site.RenderAbout(cfg.About)
	if err != nil {
		return fmt.Errorf("rendering about page: %w", err)
	}

	var store *stats.Store
	if cfg.Stats.Enabled {
		store, err = stats.Open(cfg.Stats.Path)
		if err != nil {
			return fmt.Errorf("opening stats store: %w", err)
		}
		defer store.Close()
	}

	srv := server.New(server.Config{
		Port:            cfg.Port,
		Catalog:         cfg.Catalog,
		SiteTitle:       cfg.Title,
		DefaultCategory: cfg.DefaultCategory,
		AboutPath:       cfg.About,
	}, doc, aboutHTML, store)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving menu at http://localhost:%d (Ctrl+C to stop)\n", cfg.Port)
	return srv.Run(ctx)
}
