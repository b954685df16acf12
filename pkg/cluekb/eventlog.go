package cluekb

import "github.com/google/uuid"

// Suggestion is a logged suggestion: the suggester, one card per category,
// and the responders who showed a card. For Classic rules Showed is the
// ordered seating-order prefix up to (and including) the first discloser;
// for Master rules Showed is the unordered set of every player who showed
// something. Suggestions are retained for the lifetime of the engine so
// the saturation driver can re-evaluate them.
type Suggestion struct {
	Seq       int
	ID        uuid.UUID
	Suggester PlayerID
	Cards     []CardID
	Showed    []PlayerID
}

// Accusation is a logged accusation: the accuser, one card per category,
// and whether it was correct.
type Accusation struct {
	Seq     int
	ID      uuid.UUID
	Accuser PlayerID
	Cards   []CardID
	Correct bool
}

func cloneCardSlice(cards []CardID) []CardID {
	out := make([]CardID, len(cards))
	copy(out, cards)
	return out
}

func clonePlayerSlice(players []PlayerID) []PlayerID {
	out := make([]PlayerID, len(players))
	copy(out, players)
	return out
}
