package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

// serveFunc starts the server and blocks until ctx is cancelled or the
// server fails.
type serveFunc func(ctx context.Context, configPath string) error

// newCLI builds the command-line application. Running it without a command
// starts the server.
func newCLI(out io.Writer, serve serveFunc) *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to a config file (yaml, toml or json)",
		EnvVars: []string{"TASKS_CONFIG"},
	}

	runServe := func(ctx *cli.Context) error {
		if serve == nil {
			return errors.New("server runner is not configured")
		}
		return serve(ctx.Context, ctx.String("config"))
	}

	return &cli.App{
		Name:    "tasks-api",
		Usage:   "task tracking HTTP service",
		Version: version,
		Writer:  out,
		Flags:   []cli.Flag{configFlag},
		Action:  runServe,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Flags:  []cli.Flag{configFlag},
				Action: runServe,
			},
			{
				Name:  "version",
				Usage: "print the build version",
				Action: func(ctx *cli.Context) error {
					_, err := fmt.Fprintf(ctx.App.Writer, "tasks-api %s\n", version)
					return err
				},
			},
		},
	}
}
