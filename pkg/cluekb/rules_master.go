package cluekb

import "fmt"

// applyMasterSuggestion implements the Master suggestion rule: showed is
// the unordered set of every player who showed some card.
func (e *Engine) applyMasterSuggestion(s Suggestion) (bool, error) {
	changed := false
	didShow := make(map[PlayerID]struct{}, len(s.Showed))
	for _, p := range s.Showed {
		didShow[p] = struct{}{}
	}

	for _, p := range e.playerSeq {
		_, shown := didShow[p]
		switch {
		case shown:
			if card, ok := e.mustHoldOneOf(p, s.Cards); ok {
				reason := fmt.Sprintf("showed a card in suggestion #%d, and does not hold the others", s.Seq)
				ch, err := e.assign(p, card, reason)
				if err != nil {
					return changed, err
				}
				changed = changed || ch
			}

		case p != AnswerPlayer && p != s.Suggester:
			reason := fmt.Sprintf("did not show a card in suggestion #%d", s.Seq)
			for _, c := range s.Cards {
				ch, err := e.retract(p, c, reason)
				if err != nil {
					return changed, err
				}
				changed = changed || ch
			}

		case len(s.Showed) == len(s.Cards):
			reason := fmt.Sprintf("all %d cards were shown by other players in suggestion #%d", len(s.Cards), s.Seq)
			for _, c := range s.Cards {
				ch, err := e.retract(p, c, reason)
				if err != nil {
					return changed, err
				}
				changed = changed || ch
			}
		}
	}
	return changed, nil
}
