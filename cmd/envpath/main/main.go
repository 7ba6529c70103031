package main

import (
	"os"

	"github.com/arthur-debert/envpath/cmd/envpath"
)

func main() {
	rootCmd := envpath.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		envpath.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
