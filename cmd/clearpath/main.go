package main

import (
	"os"

	"github.com/clearpath-dev/clearpath/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
