package main

import (
	"fmt"
	"os"

	"todo/internal/cli"
)

func main() {
	// Build the app from the cascading configuration
	app, err := cli.NewAppWithDefaultStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
