// Package cluekb implements the knowledge-tracking deduction engine for a
// Clue/Cluedo-style hidden-information game: a bipartite possibility
// relation between players and cards, narrowed to a fixed point after every
// observed event (a hand, a shown card, a suggestion, or an accusation).
//
// The engine is synchronous and single-threaded: every public mutating
// method runs the engine to its next fixed point before returning. Each
// exported method takes the engine's own lock, so single calls from
// concurrent goroutines do not race (see Engine and Engine.Mutex).
package cluekb

// PlayerID identifies a participant. Ids are opaque, non-empty strings
// supplied by the caller; only equality matters to the engine.
type PlayerID string

// CardID identifies a single game card.
type CardID string

// TypeID identifies a card category (suspects, weapons, rooms, ...).
type TypeID string

// AnswerPlayer is the reserved pseudo-player id whose held cards form the
// concealed solution envelope. It is never a valid real player id.
const AnswerPlayer PlayerID = "ANSWER"

func nonEmpty(s string) bool { return s != "" }
