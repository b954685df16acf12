package cluekb

import "fmt"

// saturate runs the fixed-point loop: apply the global constraints, then
// re-evaluate every logged suggestion and accusation, repeating until
// nothing changes. Each pass that does not terminate either shrinks at
// least one possibility set or records a new fact in the ledger, so the
// loop is bounded by the number of possibilities plus ledger cells.
func (e *Engine) saturate() error {
	for {
		changed := false

		ch, err := e.applyGlobalConstraints()
		if err != nil {
			return err
		}
		changed = changed || ch

		ch, err = e.replayEvents()
		if err != nil {
			return err
		}
		changed = changed || ch

		if !changed {
			return nil
		}
	}
}

// applyGlobalConstraints applies the single-pass global constraints: any
// card narrowed to one holder is recorded as held; ANSWER holding a
// category's card excludes every other card of that category; a category
// with exactly one remaining possibility for ANSWER is assigned to
// ANSWER.
func (e *Engine) applyGlobalConstraints() (bool, error) {
	changed := false

	for _, info := range e.catalog.cards() {
		holder, ok := e.store.soleHolder(info.ID)
		if !ok {
			continue
		}
		before := len(e.discoveries)
		if err := e.note(holder, info.ID, true, "nobody else holds it"); err != nil {
			return changed, e.poison(err)
		}
		if len(e.discoveries) > before {
			changed = true
		}
	}

	ch, err := e.applyAnswerUniqueness()
	if err != nil {
		return changed, err
	}
	changed = changed || ch

	ch, err = e.applyAnswerExistence()
	if err != nil {
		return changed, err
	}
	changed = changed || ch

	return changed, nil
}

// applyAnswerUniqueness: once ANSWER definitely holds some card of a
// category, every other card of that category is excluded from ANSWER's
// possibilities.
func (e *Engine) applyAnswerUniqueness() (bool, error) {
	changed := false
	for _, t := range e.catalog.types() {
		var held CardID
		found := false
		for _, c := range e.catalog.cardsByType[t.ID] {
			if e.store.definitelyHolds(AnswerPlayer, c) {
				held, found = c, true
				break
			}
		}
		if !found {
			continue
		}
		reason := fmt.Sprintf("ANSWER can only hold one %s", t.Title)
		for _, c := range e.catalog.cardsByType[t.ID] {
			if c == held {
				continue
			}
			if !e.store.mightHold(AnswerPlayer, c) {
				continue
			}
			ch, err := e.retract(AnswerPlayer, c, reason)
			if err != nil {
				return changed, err
			}
			changed = changed || ch
		}
	}
	return changed, nil
}

// applyAnswerExistence: if exactly one card of a category remains
// possible for ANSWER, ANSWER must hold it.
func (e *Engine) applyAnswerExistence() (bool, error) {
	changed := false
	for _, t := range e.catalog.types() {
		var only CardID
		count := 0
		for _, c := range e.catalog.cardsByType[t.ID] {
			if e.store.mightHold(AnswerPlayer, c) {
				count++
				only = c
			}
		}
		if count != 1 {
			continue
		}
		reason := fmt.Sprintf("only %s that ANSWER can hold", t.Title)
		ch, err := e.assign(AnswerPlayer, only, reason)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	return changed, nil
}

// replayEvents re-applies every logged suggestion and accusation, in the
// order they were observed: a later deduction (e.g. a revealed hand) can
// make an earlier suggestion's "all but one" narrowing newly decidable.
func (e *Engine) replayEvents() (bool, error) {
	changed := false
	for _, s := range e.suggestions {
		ch, err := e.applySuggestion(s)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	for _, a := range e.accusations {
		ch, err := e.applyAccusation(a)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	return changed, nil
}
