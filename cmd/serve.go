package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/config"
	"github.com/ziadkadry99/livingcost/internal/dashboard"
	"github.com/ziadkadry99/livingcost/internal/livereload"
	"github.com/ziadkadry99/livingcost/internal/pages"
	"github.com/ziadkadry99/livingcost/internal/server"
)

var (
	servePort   int
	serveDebug  bool
	serveAssets string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Starts the dashboard HTTP server. Charts are read from the assets directory
on every request, so regenerated artifacts show up on the next page load.
With --debug, failed pages show the underlying error and open browsers
reload whenever an artifact changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		applyServeFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		appCfg := dashboard.AppConfig{
			Title:     cfg.Title,
			PlotlyURL: cfg.PlotlyURL,
			Loader:    charts.NewLoader(cfg.AssetsDir),
			Pages:     pages.Default(),
			Debug:     cfg.Debug,
		}

		if cfg.Debug {
			hub := livereload.NewHub()
			watcher, err := livereload.NewWatcher(cfg.AssetsDir, hub)
			if err != nil {
				// Serving still works without live reload.
				fmt.Fprintf(os.Stderr, "Warning: live reload disabled: %v\n", err)
			} else {
				appCfg.Reload = hub
				go func() {
					if err := watcher.Run(ctx); err != nil {
						log.Printf("livereload: %v", err)
					}
				}()
			}
		}

		srv := server.New(server.Config{
			Addr:        cfg.Addr(),
			AllowAll:    cfg.AllowAllOrigins,
			LogRequests: verbose || cfg.Debug,
		})
		dashboard.New(appCfg).RegisterRoutes(srv.Router())

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "livingcost %s serving http://%s\n", Version, cfg.Addr())
		fmt.Fprintf(os.Stderr, "  Charts: %s\n", cfg.AssetsDir)
		if cfg.Debug {
			fmt.Fprintln(os.Stderr, "  Debug: on")
		}

		return srv.Start()
	},
}

// applyServeFlags overrides config values with flags the user actually set.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("debug") {
		cfg.Debug = serveDebug
	}
	if flags.Changed("assets") {
		cfg.AssetsDir = serveAssets
	}
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8050, "port to listen on")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "show error details and live-reload on chart changes")
	serveCmd.Flags().StringVar(&serveAssets, "assets", "", "directory of chart artifacts")
	rootCmd.AddCommand(serveCmd)
}
