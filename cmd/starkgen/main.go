package main

import (
	"os"

	"github.com/branched-services/go-starkgen/cmd/starkgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
