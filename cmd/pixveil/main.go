package main

import (
	"os"

	"github.com/lucin/pixveil/cmd/pixveil/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
