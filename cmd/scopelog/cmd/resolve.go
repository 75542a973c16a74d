package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/scopelog/core/log"
	"github.com/msto63/scopelog/utils/stringx"
)

var resolveLevel string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show how the active level is resolved",
	Long: `Walks the level resolution chain and shows which source supplies
the active level: an explicit --level flag, the level environment
variables in order, the registered default, or the built-in fallback.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveLevel, "level", "", "explicit level, takes precedence over the environment")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	name, source := resolveWithSource(resolveLevel)

	level, err := log.ParseLevel(name)
	if err != nil {
		printError("resolved level is invalid", err)
		return err
	}

	fmt.Println("Resolution chain:")
	fmt.Println("-----------------")
	printChainStep("flag --level", resolveLevel, source == "flag")
	for _, envVar := range log.RegisteredLevelEnvVars() {
		printChainStep("env "+envVar, os.Getenv(envVar), source == "env "+envVar)
	}
	printChainStep("registered default", log.RegisteredDefaultLevel(), source == "registered default")
	printChainStep("built-in fallback", log.DefaultLevelName, source == "built-in fallback")

	fmt.Println()
	fmt.Printf("Active level: %s (%d) from %s\n", name, int(level), source)
	return nil
}

// resolveWithSource mirrors the resolution chain and reports the winning
// source alongside the name
func resolveWithSource(explicit string) (name, source string) {
	if !stringx.IsBlank(explicit) {
		return stringx.Normalize(explicit), "flag"
	}
	for _, envVar := range log.RegisteredLevelEnvVars() {
		if value := os.Getenv(envVar); !stringx.IsBlank(value) {
			return stringx.Normalize(value), "env " + envVar
		}
	}
	if registered := log.RegisteredDefaultLevel(); !stringx.IsBlank(registered) {
		return registered, "registered default"
	}
	return log.DefaultLevelName, "built-in fallback"
}

func printChainStep(label, value string, active bool) {
	marker := " "
	if active {
		marker = "*"
	}
	if stringx.IsBlank(value) {
		value = "(unset)"
	}
	fmt.Printf("  %s %-22s %s\n", marker, label, value)
}
