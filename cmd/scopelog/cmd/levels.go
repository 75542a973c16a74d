package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/scopelog/core/log"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in and registered levels",
	Long: `Lists all known log levels with their numeric values and output
stream. Custom levels registered through a config file appear alongside
the built-in ones.`,
	Run: runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels:")
	fmt.Println("-------")

	for _, level := range log.AllLevels() {
		printLevel(level.String(), level)
	}

	custom := log.RegisteredLevels()
	if len(custom) == 0 {
		return
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return custom[names[i]] < custom[names[j]]
	})

	fmt.Println()
	fmt.Println("Registered:")
	fmt.Println("-----------")
	for _, name := range names {
		printLevel(name, custom[name])
	}
}

func printLevel(name string, level log.Level) {
	stream := "stdout"
	if level >= log.LevelWarning || level <= log.LevelDebug {
		stream = "stderr"
	}
	if level == log.LevelSilent {
		stream = "-"
	}
	fmt.Printf("  %-10s %3d  %s\n", name, int(level), stream)
}
