// Command adk-samples runs the sample agents interactively.
package main

import (
	"fmt"
	"os"

	"github.com/selvam85/google-adk-samples/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
