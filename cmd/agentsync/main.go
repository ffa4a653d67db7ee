// Package main is the entry point for the agentsync CLI.
package main

import (
	"os"

	"github.com/thoreinstein/agentsync/cmd/agentsync/commands"
	"github.com/thoreinstein/agentsync/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
