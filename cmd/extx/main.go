package main

import (
	"os"

	"github.com/msto63/extx/cmd/extx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
