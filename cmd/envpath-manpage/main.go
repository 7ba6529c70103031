package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/envpath/cmd/envpath"
)

func main() {
	rootCmd := envpath.NewRootCmd()

	if err := doc.GenMan(rootCmd, envpath.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
