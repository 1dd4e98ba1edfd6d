// Package commands implements the diamond CLI.
package commands

import (
	"github.com/euank/diamond/internal/config"
	"github.com/euank/diamond/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"

	// Global flags.
	cfgFile  string
	logLevel string

	// cfg is loaded before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "diamond",
	Short: "Print the lifecycle trace of a diamond-shaped type hierarchy",
	Long: `diamond builds a P, an S and a PS (which is both a P and an S, all of
them resting on a common D), calls print and scan through capability
interfaces, and prints every constructor, destructor and capability call
in order.

Running diamond without a subcommand is the same as "diamond run".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDemo,
}

// Execute runs the root command. Called by main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR), overrides config")
	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
		config.ApplyDefaults(loaded)
		if err := config.Validate(loaded); err != nil {
			return err
		}
	}
	if err := logger.Init(logger.Config{
		Level:  loaded.Logging.Level,
		Format: loaded.Logging.Format,
		Output: loaded.Logging.Output,
	}); err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("configuration loaded", "config_file", cfgFile, "ancestry", cfg.Ancestry)
	return nil
}
