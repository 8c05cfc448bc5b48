// Command bindingx replays property binding scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/bindingx/cmd/bindingx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
