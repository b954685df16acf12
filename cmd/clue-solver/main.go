// Command clue-solver drives the cluekb deduction engine from a YAML
// rules file and a JSONL event log, dispatching to cobra subcommands
// (play, snapshot, batch) for its distinct operations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
