// Command apiserver runs the HTTP API server directly, without the CLI
// wrapper.  Container images use this as their entry point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/turtacn/GreenScore-Intelligence/internal/interfaces/cli"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: environment only)")
	flag.Parse()

	root := cli.NewRootCommand()
	args := []string{"serve"}
	if *configPath != "" {
		args = append(args, "--config", *configPath)
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
