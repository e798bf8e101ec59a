// Command ngscaffold generates angular apps and their scripts, and splices
// lines into existing files above a marker.
package main

import (
	"os"

	"ngscaffold/cmd/ngscaffold/cmd"
	scerrors "ngscaffold/internal/errors"
)

func main() {
	err := cmd.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		scerrors.Print(os.Stderr, err)
		os.Exit(scerrors.ExitCode(err))
	}
}
