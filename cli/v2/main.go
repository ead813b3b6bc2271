package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/arbiter/internal/cli"
	"github.com/trebuchet-org/arbiter/internal/cli/render"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", render.FormatError(err))
		os.Exit(1)
	}
}
