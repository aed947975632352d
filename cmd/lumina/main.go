// Command lumina runs Lumina scripts from the command line.
//
// Usage:
//
//	lumina <file>
package main

import (
	"os"

	"github.com/lumina-lang/lumina/cmd/lumina/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
