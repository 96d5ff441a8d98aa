package main

import (
	"os"

	"github.com/ecofleet/carbon-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
