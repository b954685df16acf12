package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errRulesRequired = errors.New("--rules is required")

var log = logrus.New()

var (
	rulesPath string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "clue-solver",
	Short: "A Clue/Cluedo hidden-information knowledge-tracking engine",
	Long: `clue-solver replays a log of hands, shows, suggestions, and
accusations through the cluekb deduction engine and reports what can be
known about who holds what.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return &configErr{err}
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "path to a YAML rules file (required)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")
	rootCmd.AddCommand(playCmd, snapshotCmd, batchCmd)
}

func requireRulesFlag() error {
	if rulesPath == "" {
		return &configErr{err: errRulesRequired}
	}
	return nil
}
