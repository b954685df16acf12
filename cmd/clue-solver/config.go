package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/cluekb/pkg/cluekb"
)

// ruleConfig is the YAML shape of a rules file: the same catalog
// cluekb.Rules needs, expressed as plain data so it can be hand-edited
// and checked into testdata/.
type ruleConfig struct {
	Variant                string           `yaml:"variant"`
	AssumeRationalAccusers *bool            `yaml:"assume_rational_accusers"`
	Categories             []categoryConfig `yaml:"categories"`
	Players                []string         `yaml:"players"`
}

type categoryConfig struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Title       string       `yaml:"title"`
	Article     string       `yaml:"article"`
	Preposition string       `yaml:"preposition"`
	Cards       []cardConfig `yaml:"cards"`
}

type cardConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// loadRules reads and decodes a YAML rules file, returning the
// cluekb.Rules and player list it describes. An empty variant becomes
// Classic; the catalog and players are checked by cluekb.NewEngine, not
// here.
func loadRules(path string) (cluekb.Rules, []cluekb.PlayerID, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cluekb.Rules{}, nil, fmt.Errorf("reading rules file: %w", err)
	}

	var cfg ruleConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cluekb.Rules{}, nil, fmt.Errorf("parsing rules file: %w", err)
	}

	variant := cluekb.RulesVariant(cfg.Variant)
	if variant == "" {
		variant = cluekb.Classic
	}

	rules := cluekb.Rules{
		Variant:                variant,
		AssumeRationalAccusers: true,
	}
	if cfg.AssumeRationalAccusers != nil {
		rules.AssumeRationalAccusers = *cfg.AssumeRationalAccusers
	}

	for _, cat := range cfg.Categories {
		rules.Types = append(rules.Types, cluekb.TypeInfo{
			ID:          cluekb.TypeID(cat.ID),
			Name:        cat.Name,
			Title:       cat.Title,
			Article:     cat.Article,
			Preposition: cat.Preposition,
		})
		for _, c := range cat.Cards {
			rules.Cards = append(rules.Cards, cluekb.CardInfo{
				ID:   cluekb.CardID(c.ID),
				Name: c.Name,
				Type: cluekb.TypeID(cat.ID),
			})
		}
	}

	players := make([]cluekb.PlayerID, len(cfg.Players))
	for i, p := range cfg.Players {
		players[i] = cluekb.PlayerID(p)
	}

	return rules, players, nil
}
