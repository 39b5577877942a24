package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/modgraft/cmd/modgraft"
)

func main() {
	rootCmd := modgraft.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
