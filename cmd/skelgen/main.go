// Command skelgen generates a web service project skeleton in the current
// directory. See "skelgen --help" for the available subcommands.
package main

import (
	"os"

	"github.com/modu-ai/skelgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
