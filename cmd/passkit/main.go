// Package main provides the entry point for the passkit password generator and strength checker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonathan/passkit/internal/config"
	"github.com/jonathan/passkit/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rootConfigPath string
	rootVerbose    bool
)

// Set by PersistentPreRunE for every subcommand.
var (
	activeConfig config.Config
	logger       = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "passkit",
	Short: "Password generator and strength checker",
	Long: `passkit generates random passwords from selected character classes and checks
the strength of existing passwords against a fixed rule set.

Defaults are read from PASSKIT_* environment variables (a .env file is loaded if present)
and from an optional JSON file given with --config. Command-line flags override both.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file with generation defaults")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print debug logs to stderr")
}

// loadRuntime layers the config file over the environment and builds the logger.
// Values are validated by the command that uses them, after flags are applied.
func loadRuntime(cmd *cobra.Command, _ []string) error {
	envCfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	fileCfg := &config.Config{}
	if rootConfigPath != "" {
		fileCfg, err = config.LoadConfig(rootConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	activeConfig = fileCfg.MergeWithDefaults(*envCfg)
	if cmd.Flags().Changed("verbose") {
		activeConfig.Verbose = rootVerbose
	}

	logger = logging.NewWithWriter(cmd.ErrOrStderr(), activeConfig.Verbose)
	if rootConfigPath != "" {
		logger.Debug("loaded config file", zap.String("path", rootConfigPath))
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Used until loadRuntime rebuilds it for the command's error stream
	if l, err := logging.New(false); err == nil {
		logger = l
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
