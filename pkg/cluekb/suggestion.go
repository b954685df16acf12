package cluekb

import (
	"fmt"

	"github.com/google/uuid"
)

// Suggest logs a suggestion by suggester naming cards (one per category)
// and records which players, in showed, responded by showing a card.
//
// For Classic rules, showed is the ordered seating-order list of players
// asked until one showed a card: every player before the last showed
// nothing, and only the last (if any) showed something. An empty showed
// means nobody was able to respond.
//
// For Master rules, showed is the set (any order) of every player who
// showed some card from the suggestion.
func (e *Engine) Suggest(suggester PlayerID, cards []CardID, showed []PlayerID) (Suggestion, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return Suggestion{}, e.err
	}
	if !e.playerIsValid(suggester) {
		return Suggestion{}, &ValidationError{Op: "Suggest", Reason: fmt.Sprintf("unknown or reserved suggester %q", suggester)}
	}
	if err := e.catalog.validateOneCardPerCategory("Suggest", cards); err != nil {
		return Suggestion{}, err
	}
	if !e.playersAreValid(showed) {
		return Suggestion{}, &ValidationError{Op: "Suggest", Reason: "showed contains an unknown or reserved player"}
	}
	if !e.distinctPlayers(showed) {
		return Suggestion{}, &ValidationError{Op: "Suggest", Reason: "showed lists the same player more than once"}
	}

	s := Suggestion{
		Seq:       e.nextSeq,
		ID:        uuid.New(),
		Suggester: suggester,
		Cards:     cloneCardSlice(cards),
		Showed:    clonePlayerSlice(showed),
	}
	e.nextSeq++
	e.suggestions = append(e.suggestions, s)

	e.discoveries = nil
	if _, err := e.applySuggestion(s); err != nil {
		return s, err
	}
	return s, e.saturate()
}

// applySuggestion dispatches to the rule variant in effect. Kept as two
// separate procedures (rules_classic.go, rules_master.go) rather than one
// function with a branch inside, since the two rule sets diverge enough
// that interleaving them would obscure both.
func (e *Engine) applySuggestion(s Suggestion) (bool, error) {
	switch e.rules.Variant {
	case Master:
		return e.applyMasterSuggestion(s)
	default:
		return e.applyClassicSuggestion(s)
	}
}
