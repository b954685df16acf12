package cluekb

import (
	"fmt"
	"sync"
)

// Engine is the mutable knowledge state for one game: the possibility
// store, the fact ledger, the event log, and the per-event discoveries
// log. Every exported mutating method runs its event to a fixed point
// before returning and takes mu for writing; every exported query takes
// mu for reading, so concurrent queries proceed without racing a
// mutation. Each call is atomic on its own; a sequence of calls is not.
type Engine struct {
	mu sync.RWMutex

	catalog *catalog
	rules   Rules

	players     []PlayerID // real players, construction order
	playerSeq   []PlayerID // players + AnswerPlayer, the order every global pass iterates in
	store       *possibilitySet
	ledger      *ledger
	discoveries []string

	suggestions []Suggestion
	accusations []Accusation
	nextSeq     int

	err error // sticky contradiction; once set, every call returns it
}

// Mutex returns the lock backing the engine's own per-call locking. Any
// single call is already safe on its own. The lock is not reentrant: a
// goroutine holding it cannot call the engine's exported methods, since
// each of them takes the same lock.
func (e *Engine) Mutex() *sync.RWMutex { return &e.mu }

// NewEngine constructs an engine from rules and the participating real
// player ids (ANSWER must not and cannot be included). Every player's
// possibility set — and ANSWER's — starts as the full card catalog.
func NewEngine(rules Rules, players []PlayerID) (*Engine, error) {
	cat, err := newCatalog(rules)
	if err != nil {
		return nil, err
	}

	seen := make(map[PlayerID]struct{}, len(players))
	for _, p := range players {
		if p == AnswerPlayer {
			return nil, &ValidationError{Op: "NewEngine", Reason: "ANSWER is reserved and may not be used as a real player id"}
		}
		if !nonEmpty(string(p)) {
			return nil, &ValidationError{Op: "NewEngine", Reason: "player id must not be empty"}
		}
		if _, dup := seen[p]; dup {
			return nil, &ValidationError{Op: "NewEngine", Reason: fmt.Sprintf("duplicate player id %q", p)}
		}
		seen[p] = struct{}{}
	}
	if len(players) == 0 {
		return nil, &ValidationError{Op: "NewEngine", Reason: "at least one player is required"}
	}

	cardIDs := make([]CardID, len(cat.rules.Cards))
	for i, c := range cat.rules.Cards {
		cardIDs[i] = c.ID
	}

	playerSeq := make([]PlayerID, 0, len(players)+1)
	playerSeq = append(playerSeq, players...)
	playerSeq = append(playerSeq, AnswerPlayer)

	e := &Engine{
		catalog:   cat,
		rules:     rules,
		players:   clonePlayerSlice(players),
		playerSeq: playerSeq,
		store:     newPossibilitySet(playerSeq, cardIDs),
		ledger:    newLedger(),
	}
	return e, nil
}

// playerIsValid reports whether id is a real (non-ANSWER) participant.
func (e *Engine) playerIsValid(id PlayerID) bool {
	if id == AnswerPlayer {
		return false
	}
	for _, p := range e.players {
		if p == id {
			return true
		}
	}
	return false
}

func (e *Engine) playersAreValid(ids []PlayerID) bool {
	for _, id := range ids {
		if !e.playerIsValid(id) {
			return false
		}
	}
	return true
}

func (e *Engine) distinctPlayers(ids []PlayerID) bool {
	seen := make(map[PlayerID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// note records a fact in the ledger and, if it is genuinely new and
// carries a human-readable reason, appends a discovery line. It is the
// sole path by which a fact becomes part of the ledger.
func (e *Engine) note(player PlayerID, card CardID, holds bool, reason string) error {
	isNew, err := e.ledger.record(player, card, holds)
	if err != nil {
		return err
	}
	if isNew && reason != "" {
		e.discoveries = append(e.discoveries, formatDiscovery(player, card, holds, reason, e.catalog))
	}
	return nil
}

func formatDiscovery(player PlayerID, card CardID, holds bool, reason string, cat *catalog) string {
	info := cat.cardIndex[card]
	typ := cat.typeIndex[info.Type]
	verb := "does not hold"
	if holds {
		verb = "holds"
	}
	return fmt.Sprintf("%s %s %s%s: %s", player, verb, typ.Article, info.Name, reason)
}

// assign records that player holds card. Fatal (ContradictionError) if
// the ledger already says player cannot hold card, or if some other
// player is already the sole possible holder.
func (e *Engine) assign(player PlayerID, card CardID, reason string) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	if holder, ok := e.store.soleHolder(card); ok && holder != player {
		return false, e.poison(&ContradictionError{
			Player: player, Card: card,
			Reason: fmt.Sprintf("%s already definitely holds it", holder),
		})
	}
	if err := e.note(player, card, true, reason); err != nil {
		return false, e.poison(err)
	}
	removed, changed := e.store.assignRaw(player, card)
	for _, p := range removed {
		if err := e.note(p, card, false, ""); err != nil {
			return false, e.poison(err)
		}
	}
	return changed, nil
}

// retract records that player does not hold card. Fatal
// (ContradictionError) if player is the only remaining possible holder.
func (e *Engine) retract(player PlayerID, card CardID, reason string) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	if holder, ok := e.store.soleHolder(card); ok && holder == player {
		return false, e.poison(&ContradictionError{
			Player: player, Card: card,
			Reason: "player is the only remaining possible holder",
		})
	}
	if err := e.note(player, card, false, reason); err != nil {
		return false, e.poison(err)
	}
	changed := e.store.retractRaw(player, card)
	return changed, nil
}

// mustHoldOneOf returns the single card of cards still possible for
// player, if exactly one remains possible; otherwise ok is false. Shared
// by the classic and master suggestion rules as the "all-but-one"
// narrowing helper.
func (e *Engine) mustHoldOneOf(player PlayerID, cards []CardID) (card CardID, ok bool) {
	count := 0
	for _, c := range cards {
		if e.store.mightHold(player, c) {
			count++
			if count == 1 {
				card = c
			} else {
				return "", false
			}
		}
	}
	if count == 1 {
		return card, true
	}
	return "", false
}

// mustNotHoldOneOf returns the single card of cards not yet definitely
// held by player, if exactly one such card remains; otherwise ok is
// false. Used by accusation handling.
func (e *Engine) mustNotHoldOneOf(player PlayerID, cards []CardID) (card CardID, ok bool) {
	count := 0
	for _, c := range cards {
		if !e.store.definitelyHolds(player, c) {
			count++
			if count == 1 {
				card = c
			} else {
				return "", false
			}
		}
	}
	if count == 1 {
		return card, true
	}
	return "", false
}
