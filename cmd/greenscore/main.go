// Command greenscore is the CLI entry point: serve the HTTP API or inspect
// rankings, advisories, scenarios, and summaries from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/GreenScore-Intelligence/internal/interfaces/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
