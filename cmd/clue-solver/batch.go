package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/cluekb/internal/batch"
	"github.com/gitrdm/cluekb/pkg/cluekb"
)

var (
	batchDir     string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Replay every *.jsonl log in a directory concurrently, one engine per log",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of *.jsonl event logs (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of logs to replay concurrently")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := requireRulesFlag(); err != nil {
		return err
	}
	if batchDir == "" {
		return &configErr{err: fmt.Errorf("--dir is required")}
	}

	rules, players, err := loadRules(rulesPath)
	if err != nil {
		return &configErr{err}
	}
	newRules := func() (cluekb.Rules, []cluekb.PlayerID) { return rules, players }

	results, err := batch.RunDirectory(batchDir, newRules, batchWorkers)
	if err != nil {
		return &inputErr{err}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.WithField("file", r.Path).Errorf("replay failed: %v", r.Err)
			continue
		}
		log.WithField("file", r.Path).Infof("replayed %d events", r.LinesApplied)
	}
	if failed > 0 {
		return &inputErr{fmt.Errorf("%d of %d logs failed to replay", failed, len(results))}
	}
	return nil
}
