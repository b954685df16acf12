package cluekb

import "fmt"

// Hand asserts that player holds exactly cards and no others. player
// must be a real (non-ANSWER) player and every id in cards must be a
// known card.
func (e *Engine) Hand(player PlayerID, cards []CardID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.err
	}
	if !e.playerIsValid(player) {
		return &ValidationError{Op: "Hand", Reason: fmt.Sprintf("unknown or reserved player %q", player)}
	}
	seen := make(map[CardID]struct{}, len(cards))
	for _, c := range cards {
		if !e.catalog.cardIsValid(c) {
			return &ValidationError{Op: "Hand", Reason: fmt.Sprintf("unknown card %q", c)}
		}
		if _, dup := seen[c]; dup {
			return &ValidationError{Op: "Hand", Reason: fmt.Sprintf("card %q listed twice", c)}
		}
		seen[c] = struct{}{}
	}

	e.discoveries = nil
	for _, info := range e.catalog.cards() {
		var err error
		if _, held := seen[info.ID]; held {
			_, err = e.assign(player, info.ID, "hand")
		} else {
			_, err = e.retract(player, info.ID, "hand")
		}
		if err != nil {
			return err
		}
	}
	return e.saturate()
}

// Show asserts that player holds card, as observed directly (e.g. a
// single-card reveal outside a suggestion).
func (e *Engine) Show(player PlayerID, card CardID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.err
	}
	if !e.playerIsValid(player) {
		return &ValidationError{Op: "Show", Reason: fmt.Sprintf("unknown or reserved player %q", player)}
	}
	if !e.catalog.cardIsValid(card) {
		return &ValidationError{Op: "Show", Reason: fmt.Sprintf("unknown card %q", card)}
	}

	e.discoveries = nil
	if _, err := e.assign(player, card, "revealed"); err != nil {
		return err
	}
	return e.saturate()
}
