package main

import (
	"os"

	"github.com/msto63/quickx/cmd/quickx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
