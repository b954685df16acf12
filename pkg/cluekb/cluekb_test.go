package cluekb

import "testing"

// standardCatalog builds the 6 suspects / 6 weapons / 9 rooms catalog used
// throughout the end-to-end scenario tests below.
func standardCatalog() (types []TypeInfo, cards []CardInfo) {
	types = []TypeInfo{
		{ID: "suspect", Name: "Suspects", Title: "suspect", Article: "", Preposition: ""},
		{ID: "weapon", Name: "Weapons", Title: "weapon", Article: "the ", Preposition: "with "},
		{ID: "room", Name: "Rooms", Title: "room", Article: "the ", Preposition: "in "},
	}
	cards = []CardInfo{
		{ID: "mustard", Name: "Colonel Mustard", Type: "suspect"},
		{ID: "white", Name: "Mrs. White", Type: "suspect"},
		{ID: "plum", Name: "Professor Plum", Type: "suspect"},
		{ID: "peacock", Name: "Mrs. Peacock", Type: "suspect"},
		{ID: "green", Name: "Mr. Green", Type: "suspect"},
		{ID: "scarlet", Name: "Miss Scarlet", Type: "suspect"},
		{ID: "revolver", Name: "Revolver", Type: "weapon"},
		{ID: "knife", Name: "Knife", Type: "weapon"},
		{ID: "rope", Name: "Rope", Type: "weapon"},
		{ID: "pipe", Name: "Lead pipe", Type: "weapon"},
		{ID: "wrench", Name: "Wrench", Type: "weapon"},
		{ID: "candlestick", Name: "Candlestick", Type: "weapon"},
		{ID: "dining", Name: "Dining room", Type: "room"},
		{ID: "conservatory", Name: "Conservatory", Type: "room"},
		{ID: "kitchen", Name: "Kitchen", Type: "room"},
		{ID: "study", Name: "Study", Type: "room"},
		{ID: "library", Name: "Library", Type: "room"},
		{ID: "billiard", Name: "Billiard room", Type: "room"},
		{ID: "lounge", Name: "Lounge", Type: "room"},
		{ID: "ballroom", Name: "Ballroom", Type: "room"},
		{ID: "hall", Name: "Hall", Type: "room"},
	}
	return types, cards
}

func newTestEngine(t *testing.T, variant RulesVariant, players []PlayerID) *Engine {
	t.Helper()
	types, cards := standardCatalog()
	rules := Rules{
		Variant:                variant,
		Types:                  types,
		Cards:                  cards,
		AssumeRationalAccusers: true,
	}
	e, err := NewEngine(rules, players)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

var abcd = []PlayerID{"a", "b", "c", "d"}

// Dealing a player's own hand immediately excludes everyone else from
// holding those cards.
func TestScenario_OwnHandPropagation(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)

	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}

	for _, c := range []CardID{"mustard", "revolver", "dining"} {
		holders := e.MightHold(c)
		if len(holders) != 1 || holders[0] != "a" {
			t.Errorf("card %s: holders = %v, want [a]", c, holders)
		}
	}

	hand := e.MightBeHeldBy("a")
	want := map[CardID]bool{"mustard": true, "revolver": true, "dining": true}
	if len(hand) != len(want) {
		t.Fatalf("a's possibility set = %v, want exactly %v", hand, want)
	}
	for _, c := range hand {
		if !want[c] {
			t.Errorf("a's possibility set unexpectedly contains %s", c)
		}
	}

	for _, c := range []CardID{"mustard", "revolver", "dining"} {
		for _, p := range []PlayerID{"b", "c", "d"} {
			if e.store.mightHold(p, c) {
				t.Errorf("%s should no longer possibly hold %s", p, c)
			}
		}
	}
}

// A suggestion nobody can answer eliminates its three cards from every
// real player, but not from ANSWER.
func TestScenario_EliminationViaSuggestionMiss(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	if _, err := e.Suggest("a", []CardID{"white", "knife", "conservatory"}, nil); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	for _, c := range []CardID{"white", "knife", "conservatory"} {
		for _, p := range []PlayerID{"b", "c", "d"} {
			if e.store.mightHold(p, c) {
				t.Errorf("%s should be eliminated for %s", p, c)
			}
		}
		if !e.store.mightHold(AnswerPlayer, c) {
			t.Errorf("ANSWER should still possibly hold %s", c)
		}
	}
}

// Under Classic rules, once every other named card is ruled out for the
// last responder, the remaining card is their forced reveal.
func TestScenario_ForcedRevealClassic(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	// Establish that b does not hold white or knife.
	if _, err := e.Suggest("a", []CardID{"white", "knife", "study"}, nil); err != nil {
		t.Fatalf("setup suggest: %v", err)
	}

	if _, err := e.Suggest("a", []CardID{"white", "knife", "kitchen"}, []PlayerID{"b"}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if !e.DefinitelyHolds("b", "kitchen") {
		t.Fatalf("b should definitely hold kitchen")
	}
	holders := e.MightHold("kitchen")
	if len(holders) != 1 || holders[0] != "b" {
		t.Errorf("kitchen holders = %v, want [b]", holders)
	}
	for _, p := range []PlayerID{"a", "c", "d", AnswerPlayer} {
		if e.store.mightHold(p, "kitchen") {
			t.Errorf("%s should be excluded from holding kitchen", p)
		}
	}
}

// Under Master rules, a suggestion every non-suggester, non-ANSWER
// player responds to excludes the suggester and ANSWER from all three
// cards.
func TestScenario_MasterAllShown(t *testing.T) {
	e := newTestEngine(t, Master, abcd)
	if _, err := e.Suggest("a", []CardID{"plum", "rope", "library"}, []PlayerID{"b", "c", "d"}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, c := range []CardID{"plum", "rope", "library"} {
		if e.store.mightHold("a", c) {
			t.Errorf("suggester a should be excluded from %s", c)
		}
		if e.store.mightHold(AnswerPlayer, c) {
			t.Errorf("ANSWER should be excluded from %s", c)
		}
	}
}

// Once five of six suspects are definitely held by real players, the
// sixth is forced onto ANSWER.
func TestScenario_AnswerUniquenessCascade(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	suspects := []CardID{"mustard", "white", "plum", "peacock", "green"} // 5 of 6
	holders := []PlayerID{"a", "b", "c", "d", "a"}
	for i, c := range suspects {
		if _, err := e.assign(holders[i], c, "test setup"); err != nil {
			t.Fatalf("assign %s to %s: %v", c, holders[i], err)
		}
	}
	if err := e.saturate(); err != nil {
		t.Fatalf("saturate: %v", err)
	}

	if !e.DefinitelyHolds(AnswerPlayer, "scarlet") {
		t.Fatalf("ANSWER should be forced to hold the sixth suspect (scarlet)")
	}
	for _, p := range abcd {
		if e.store.mightHold(p, "scarlet") {
			t.Errorf("%s should be excluded from holding scarlet once ANSWER holds it", p)
		}
	}
}

// An incorrect accusation narrows ANSWER's remaining possibilities once
// two of its three cards are already known to be held by ANSWER.
func TestScenario_FailedAccusationNarrowing(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if _, err := e.assign(AnswerPlayer, "scarlet", "test setup"); err != nil {
		t.Fatalf("assign scarlet: %v", err)
	}
	if _, err := e.assign(AnswerPlayer, "candlestick", "test setup"); err != nil {
		t.Fatalf("assign candlestick: %v", err)
	}
	if err := e.saturate(); err != nil {
		t.Fatalf("saturate: %v", err)
	}

	if _, err := e.Accuse("a", []CardID{"scarlet", "candlestick", "hall"}, false); err != nil {
		t.Fatalf("Accuse: %v", err)
	}

	if e.store.mightHold(AnswerPlayer, "hall") {
		t.Errorf("ANSWER should have hall retracted once the other two cards of the accusation are known held")
	}
	if e.store.mightHold("a", "scarlet") || e.store.mightHold("a", "candlestick") || e.store.mightHold("a", "hall") {
		t.Errorf("accuser a should not possibly hold any accused card")
	}
}

// Every (player, card) pair agrees on both sides of the possibility store.
func TestInvariant_Duality(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	if _, err := e.Suggest("b", []CardID{"white", "knife", "kitchen"}, []PlayerID{"c"}); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, info := range e.catalog.cards() {
		for _, p := range e.playerSeq {
			inPlayer := e.store.mightHold(p, info.ID)
			_, inCard := e.store.cardPlayers[info.ID][p]
			if inPlayer != inCard {
				t.Errorf("duality broken for (%s,%s): player-side=%v card-side=%v", p, info.ID, inPlayer, inCard)
			}
		}
	}
}

func TestInvariant_AtLeastOneHolder(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	for _, info := range e.catalog.cards() {
		if len(e.MightHold(info.ID)) == 0 {
			t.Errorf("card %s has no possible holder", info.ID)
		}
	}
}

// Replaying an identical fact twice is not a contradiction.
func TestInvariant_LedgerMonotone(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("repeated identical Hand should not contradict: %v", err)
	}
	if e.Err() != nil {
		t.Fatalf("engine should not be poisoned: %v", e.Err())
	}
}

func TestInvariant_EventIdempotence(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	snapBefore := e.Snapshot()

	if _, err := e.Suggest("a", []CardID{"white", "knife", "study"}, nil); err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	mid := e.Snapshot()
	if _, err := e.Suggest("a", []CardID{"white", "knife", "study"}, nil); err != nil {
		t.Fatalf("repeated Suggest: %v", err)
	}
	after := e.Snapshot()

	_ = snapBefore
	for c, got := range after.Cards {
		want := mid.Cards[c]
		if len(got) != len(want) {
			t.Errorf("card %s holders changed on repeat suggestion: before=%v after=%v", c, want, got)
		}
	}
}

func TestContradiction_RetractSoleHolderIsFatal(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("a", []CardID{"mustard", "revolver", "dining"}); err != nil {
		t.Fatalf("Hand: %v", err)
	}
	if _, err := e.retract("a", "mustard", "test"); err == nil {
		t.Fatalf("expected a ContradictionError retracting the sole holder")
	} else if _, ok := err.(*ContradictionError); !ok {
		t.Fatalf("expected *ContradictionError, got %T: %v", err, err)
	}
	if e.Err() == nil {
		t.Fatalf("engine should be poisoned after a contradiction")
	}
	if err := e.Show("b", "revolver"); err == nil {
		t.Fatalf("poisoned engine should reject further calls")
	}
}

func TestValidation_UnknownPlayerAndCard(t *testing.T) {
	e := newTestEngine(t, Classic, abcd)
	if err := e.Hand("nobody", []CardID{"mustard"}); err == nil {
		t.Fatalf("expected ValidationError for unknown player")
	}
	if err := e.Hand(AnswerPlayer, []CardID{"mustard"}); err == nil {
		t.Fatalf("expected ValidationError for ANSWER as a real player")
	}
	if err := e.Show("a", "not-a-card"); err == nil {
		t.Fatalf("expected ValidationError for unknown card")
	}
	if _, err := e.Suggest("a", []CardID{"mustard", "revolver"}, nil); err == nil {
		t.Fatalf("expected ValidationError for wrong card count in suggestion")
	}
}
