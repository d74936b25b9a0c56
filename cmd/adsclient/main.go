// Command adsclient runs the DFA and DFP API examples from the command line.
package main

import (
	"os"

	"github.com/custodia-labs/adsclient/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
