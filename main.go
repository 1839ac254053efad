package main

import (
	"os"

	"github.com/gobees/gobees/cmd"
	"github.com/gobees/gobees/internal/cli"
)

func main() {
	err := cmd.Execute()
	os.Exit(cli.ExitCode(err))
}
