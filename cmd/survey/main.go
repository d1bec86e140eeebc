package main

import (
	"os"

	"github.com/calvinmclean/survey/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
