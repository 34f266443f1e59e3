package main

import (
	"os"

	"confide/cmd/confide/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
