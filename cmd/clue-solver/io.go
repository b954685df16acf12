package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gitrdm/cluekb/internal/gamelog"
	"github.com/gitrdm/cluekb/pkg/cluekb"
)

// readLog decodes path as a JSONL event log.
func readLog(path string) ([]gamelog.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()
	return gamelog.Decode(f)
}

// writeSnapshot JSON-encodes snap to path.
func writeSnapshot(path string, snap cluekb.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
