package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/scopelog/core/log"
)

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Validate a level name",
	Long: `Checks whether a level name or numeric value is known. Exits with
a non-zero status for unknown names, which makes the command usable in
shell scripts and CI checks.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(args[0])
	if err != nil {
		printError("invalid level", err)
		return err
	}

	fmt.Printf("%s -> %s (%d)\n", args[0], level.String(), int(level))
	return nil
}
