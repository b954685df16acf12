package cluekb

import (
	"fmt"

	"github.com/google/uuid"
)

// Accuse logs an accusation by accuser naming cards (one per category)
// and records its outcome. Regardless of outcome, accuser is deduced to
// hold none of cards — an accuser is assumed rational, never accusing a
// card they hold themselves, configurable via Rules.AssumeRationalAccusers.
// A correct accusation reveals the solution outright; an incorrect one
// narrows ANSWER's remaining possibilities when all but one of cards is
// already known to be held by ANSWER.
func (e *Engine) Accuse(accuser PlayerID, cards []CardID, correct bool) (Accusation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return Accusation{}, e.err
	}
	if !e.playerIsValid(accuser) {
		return Accusation{}, &ValidationError{Op: "Accuse", Reason: fmt.Sprintf("unknown or reserved accuser %q", accuser)}
	}
	if err := e.catalog.validateOneCardPerCategory("Accuse", cards); err != nil {
		return Accusation{}, err
	}

	a := Accusation{
		Seq:     e.nextSeq,
		ID:      uuid.New(),
		Accuser: accuser,
		Cards:   cloneCardSlice(cards),
		Correct: correct,
	}
	e.nextSeq++
	e.accusations = append(e.accusations, a)

	e.discoveries = nil
	if _, err := e.applyAccusation(a); err != nil {
		return a, err
	}
	return a, e.saturate()
}

func (e *Engine) applyAccusation(a Accusation) (bool, error) {
	changed := false

	if e.rules.AssumeRationalAccusers {
		reason := fmt.Sprintf("made accusation #%d", a.Seq)
		for _, c := range a.Cards {
			ch, err := e.retract(a.Accuser, c, reason)
			if err != nil {
				return changed, err
			}
			changed = changed || ch
		}
	}

	if a.Correct {
		reason := fmt.Sprintf("correct accusation #%d", a.Seq)
		for _, c := range a.Cards {
			ch, err := e.assign(AnswerPlayer, c, reason)
			if err != nil {
				return changed, err
			}
			changed = changed || ch
		}
		return changed, nil
	}

	if card, ok := e.mustNotHoldOneOf(AnswerPlayer, a.Cards); ok {
		reason := fmt.Sprintf("holds the other cards in accusation #%d", a.Seq)
		ch, err := e.retract(AnswerPlayer, card, reason)
		if err != nil {
			return changed, err
		}
		changed = changed || ch
	}
	return changed, nil
}
