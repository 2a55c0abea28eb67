package main

import (
	"os"

	"github.com/signalnine/solvecmp/cmd"
	"github.com/signalnine/solvecmp/internal/errors"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
