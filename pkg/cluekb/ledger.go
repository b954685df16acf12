package cluekb

// factKey identifies a single (player, card) cell of the ledger.
type factKey struct {
	player PlayerID
	card   CardID
}

// ledger is the monotone set of established facts: once a key maps to a
// value it never changes. record reports whether this call established a
// genuinely new fact (isNew) so the caller can decide whether a
// discovery line is warranted; it reports a *ContradictionError if the
// new value disagrees with the recorded one.
type ledger struct {
	facts map[factKey]bool
}

func newLedger() *ledger {
	return &ledger{facts: make(map[factKey]bool)}
}

func (l *ledger) lookup(player PlayerID, card CardID) (holds bool, ok bool) {
	holds, ok = l.facts[factKey{player, card}]
	return holds, ok
}

func (l *ledger) record(player PlayerID, card CardID, holds bool) (isNew bool, err error) {
	key := factKey{player, card}
	existing, ok := l.facts[key]
	if ok {
		if existing != holds {
			return false, &ContradictionError{
				Player: player,
				Card:   card,
				Reason: "ledger already records the opposite fact",
			}
		}
		return false, nil
	}
	l.facts[key] = holds
	return true, nil
}
