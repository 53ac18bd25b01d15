package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/cache"
	"github.com/naka-gawa/ghprofile/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves profiles over an HTTP JSON API",
	Long: `Starts an HTTP server with JSON endpoints for profiles, repositories,
badges and search. Loaded profiles are cached according to the cache section
of the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := cache.New(ctx, a.cfg.CacheOptions())
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer c.Close()
		a.logger.Debug("cache ready", "backend", a.cfg.Cache.Backend, "ttl", a.cfg.GetCacheTTL())

		srv := server.New(a.aggregator, c, a.cfg.GetCacheTTL(), a.logger)
		return srv.ListenAndServe(ctx, a.cfg.Server.Addr, a.cfg.GetShutdownTimeout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

