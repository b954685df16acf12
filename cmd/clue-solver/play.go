package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/cluekb/internal/gamelog"
	"github.com/gitrdm/cluekb/pkg/cluekb"
)

var (
	playLogPath string
	playOutPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Replay an event log, logging each event and (at debug level) its discoveries",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playLogPath, "log", "", "path to a JSONL event log (required)")
	playCmd.Flags().StringVar(&playOutPath, "out", "", "optional path to write the final snapshot to")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := requireRulesFlag(); err != nil {
		return err
	}
	if playLogPath == "" {
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

	lines, err := readLog(playLogPath)
	if err != nil {
		return &inputErr{err}
	}

	for i, ln := range lines {
		log.WithFields(logrus.Fields{"seq": i + 1, "kind": ln.Kind, "player": ln.Player}).Info("event received")

		if err := applyOneLine(engine, ln); err != nil {
			if engine.Err() != nil {
				log.WithFields(logrus.Fields{"seq": i + 1, "kind": ln.Kind}).Error(err)
			}
			return &inputErr{fmt.Errorf("event %d (%s): %w", i+1, ln.Kind, err)}
		}
		for _, d := range engine.Discoveries() {
			log.Debug(d)
		}
		if err := engine.Err(); err != nil {
			log.WithFields(logrus.Fields{"seq": i + 1, "kind": ln.Kind}).Error(err)
			return &inputErr{fmt.Errorf("event %d (%s) left the engine in a contradictory state: %w", i+1, ln.Kind, err)}
		}
	}

	if playOutPath != "" {
		if err := writeSnapshot(playOutPath, engine.Snapshot()); err != nil {
			return &outputErr{err}
		}
	}
	return nil
}

func applyOneLine(e *cluekb.Engine, ln gamelog.Line) error {
	switch ln.Kind {
	case gamelog.KindHand:
		return e.Hand(ln.Player, ln.Cards)
	case gamelog.KindShow:
		return e.Show(ln.Player, ln.Card)
	case gamelog.KindSuggest:
		_, err := e.Suggest(ln.Player, ln.Cards, ln.Showed)
		return err
	case gamelog.KindAccuse:
		_, err := e.Accuse(ln.Player, ln.Cards, ln.Correct)
		return err
	default:
		return fmt.Errorf("unknown event kind %q", ln.Kind)
	}
}
