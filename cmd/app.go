package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/ghprofile/internal/config"
	"github.com/naka-gawa/ghprofile/internal/gateway"
	"github.com/naka-gawa/ghprofile/internal/usecase"
)

// app bundles what every command needs.
type app struct {
	cfg        *config.Config
	logger     *log.Logger
	fetcher    gateway.Fetcher
	aggregator *usecase.Aggregator
}

// newLogger creates a logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newApp loads the configuration and wires the gateway and use case layers.
// A --contributions flag on cmd turns on streaks in addition to the config.
func newApp(cmd *cobra.Command) (*app, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.GitHub.Token == "" {
		logger.Debug("no GitHub token configured, using anonymous requests")
	}

	// Inject dependencies.
	fetcher, err := gateway.NewGitHubGateway(gateway.Options{
		Token:      cfg.GitHub.Token,
		BaseURL:    cfg.GitHub.BaseURL,
		GraphQLURL: cfg.GitHub.GraphQLURL,
		Timeout:    cfg.GetTimeout(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}

	requested, _ := cmd.Flags().GetBool("contributions")
	contributions := contributionsEnabled(cfg, requested)
	if requested && !contributions {
		logger.Warn("contribution streaks need a GitHub token, skipping")
	}

	opts := []usecase.Option{
		usecase.WithPerPage(cfg.GitHub.PerPage),
		usecase.WithContributions(contributions),
		usecase.WithClock(time.Now),
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		fetcher:    fetcher,
		aggregator: usecase.NewAggregator(fetcher, logger, opts...),
	}, nil
}

// contributionsEnabled reports whether the contribution calendar is fetched.
// The GraphQL API rejects anonymous calls, so a token is always required.
func contributionsEnabled(cfg *config.Config, requested bool) bool {
	return (cfg.GitHub.Contributions || requested) && cfg.GitHub.Token != ""
}

// checkFormat rejects output formats the commands do not know.
func checkFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (valid: text, json)", format)
	}
}
