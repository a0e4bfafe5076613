// Package main is the entry point for the boots CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/1eedaegon/boots/internal/cmd"
	oerrors "github.com/1eedaegon/boots/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmdForArgs(os.Args[1:])

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
