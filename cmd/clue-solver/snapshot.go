package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/cluekb/pkg/cluekb"
)

var snapshotLogPath string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Replay an event log and print the final knowledge state as JSON",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotLogPath, "log", "", "path to a JSONL event log (required)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := requireRulesFlag(); err != nil {
		return err
	}
	if snapshotLogPath == "" {
		return &configErr{err: fmt.Errorf("--log is required")}
	}

	rules, players, err := loadRules(rulesPath)
	if err != nil {
		return &configErr{err}
	}
	engine, err := cluekb.NewEngine(rules, players)
	if err != nil {
		return &configErr{err}
	}

	lines, err := readLog(snapshotLogPath)
	if err != nil {
		return &inputErr{err}
	}
	for i, ln := range lines {
		if err := applyOneLine(engine, ln); err != nil {
			return &inputErr{fmt.Errorf("event %d (%s): %w", i+1, ln.Kind, err)}
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(engine.Snapshot()); err != nil {
		return &outputErr{err}
	}
	return nil
}
