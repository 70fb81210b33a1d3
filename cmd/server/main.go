// Package main implements the entry point for the tasks API server, a small
// JSON service for creating, listing, updating and deleting tasks.
package main

import (
	"fmt"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app := newCLI(os.Stdout, runServer)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tasks-api: %v\n", err)
		os.Exit(1)
	}
}
