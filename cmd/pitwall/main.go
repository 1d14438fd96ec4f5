package main

import (
	"os"

	"github.com/apexworks/pitwall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
