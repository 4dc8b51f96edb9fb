package main

import (
	"os"

	"github.com/dev-scripter/kickoff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
