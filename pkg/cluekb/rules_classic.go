package cluekb

import "fmt"

// applyClassicSuggestion implements the Classic suggestion rule: showed
// is the ordered seating-order prefix of players asked until one showed a
// card. Every player before the last explicitly showed nothing; the last
// (if any) showed something and, if forced, is narrowed to the single
// card they must have shown.
func (e *Engine) applyClassicSuggestion(s Suggestion) (bool, error) {
	changed := false

	if len(s.Showed) == 0 {
		for _, p := range e.playerSeq {
			if p == AnswerPlayer || p == s.Suggester {
				continue
			}
			reason := fmt.Sprintf("did not show a card in suggestion #%d", s.Seq)
			for _, c := range s.Cards {
				ch, err := e.retract(p, c, reason)
				if err != nil {
					return changed, err
				}
				changed = changed || ch
			}
		}
		return changed, nil
	}

	for _, p := range s.Showed[:len(s.Showed)-1] {
		reason := fmt.Sprintf("did not show a card in suggestion #%d", s.Seq)
		for _, c := range s.Cards {
			ch, err := e.retract(p, c, reason)
			if err != nil {
				return changed, err
			}
			changed = changed || ch
		}
	}

	last := s.Showed[len(s.Showed)-1]
	if card, ok := e.mustHoldOneOf(last, s.Cards); ok {
		reason := fmt.Sprintf("showed a card in suggestion #%d, and does not hold the others", s.Seq)
		ch, err := e.assign(last, card, reason)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	return changed, nil
}
