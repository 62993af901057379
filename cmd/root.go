package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/killallgit/podcast-search/pkg/config"
	"github.com/killallgit/podcast-search/pkg/logger"
	"github.com/spf13/cobra"
)

// Command annotations
const (
	skipConfig = "skip-config" // runs without loading configuration
	ownLogging = "own-logging" // configures logging itself
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-search",
	Short: "Podcast catalog search API and terminal browser",
	Long: `Podcast Search - paginated search over a podcast catalog

The API proxies an upstream catalog, caches pages in memory and mirrors
every podcast it sees into a local sqlite database so searches keep
working when the upstream is down. The terminal browser pages through
the API with debounced search-as-you-type.

Features:
  • GET /api/podcasts with page, limit and search
  • Local sqlite mirror with fallback search
  • Responsive terminal card grid`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// setup loads configuration and configures logging before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	if err := loadConfig(); err != nil {
		return err
	}

	if cmd.Annotations[ownLogging] == "true" {
		return nil
	}
	initLogging(cmd, os.Stderr)
	return nil
}

// loadConfig loads the configuration when a command needs it
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}

// initLogging applies --log-level/--json-logs, falling back to the logging config section
func initLogging(cmd *cobra.Command, out io.Writer) {
	level := config.GetString("logging.level")
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}

	jsonLogs := config.GetString("logging.format") == "json"
	if f := cmd.Flags().Lookup("json-logs"); f != nil && f.Changed {
		jsonLogs, _ = cmd.Flags().GetBool("json-logs")
	}

	logger.Init(logger.Options{Level: level, JSON: jsonLogs, Output: out})
}
