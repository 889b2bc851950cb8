package main

import (
	"os"

	"github.com/katalvlaran/dnc/cmd/dnc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
