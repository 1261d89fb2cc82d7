package main

import (
	"os"

	"github.com/enerflo/infisical-run/cmd"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cmd.RootCmd.Version = version
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
