package main

import (
	"os"

	"github.com/msto63/scopelog/cmd/scopelog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
