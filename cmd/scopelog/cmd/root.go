package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/scopelog/core/config"
	"github.com/msto63/scopelog/core/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scopelog",
	Short: "Inspect and resolve scopelog logging configuration",
	Long: `scopelog inspects the logging level system: it lists the known
levels, shows how the active level is resolved from flags, environment
variables, and registered defaults, and validates level names and
configuration files.`,
	PersistentPreRunE: loadConfigFile,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "logging config file (TOML or YAML)")
}

// loadConfigFile applies --config to the default scope set before any
// subcommand runs
func loadConfigFile(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		printError("cannot load config", err)
		return err
	}

	if result := cfg.Validate(config.DefaultRules()); !result.Valid {
		for _, msg := range result.Errors {
			fmt.Fprintf(os.Stderr, "invalid config: %s\n", msg)
		}
		return fmt.Errorf("config validation failed: %s", cfgFile)
	}

	if err := cfg.Apply(log.Default()); err != nil {
		printError("cannot apply config", err)
		return err
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
