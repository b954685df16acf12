// Package gamelog decodes the line-oriented JSON event format the CLI and
// the batch runner both drive an engine from: one JSON object per line,
// one line per game event. A line-per-event (JSONL) framing rather than
// a single top-level JSON array lets a log be streamed and appended to.
//
// Each line is a tagged discriminated value: exactly one of the keys
// "hand", "show", "suggest", "accuse" names the event, with its payload
// nested underneath that key.
package gamelog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gitrdm/cluekb/pkg/cluekb"
)

// Kind names the event a Line carries.
type Kind string

const (
	KindHand    Kind = "hand"
	KindShow    Kind = "show"
	KindSuggest Kind = "suggest"
	KindAccuse  Kind = "accuse"
)

// Line is one decoded event, normalized to a single shape regardless of
// which tagged key it was read from. Only the fields relevant to Kind
// are populated; the rest are left zero.
type Line struct {
	Kind    Kind
	Player  cluekb.PlayerID
	Card    cluekb.CardID
	Cards   []cluekb.CardID
	Showed  []cluekb.PlayerID
	Correct bool
}

type handPayload struct {
	Player cluekb.PlayerID `json:"player"`
	Cards  []cluekb.CardID `json:"cards"`
}

type showPayload struct {
	Player cluekb.PlayerID `json:"player"`
	Card   cluekb.CardID   `json:"card"`
}

type suggestPayload struct {
	Player cluekb.PlayerID   `json:"player"`
	Cards  []cluekb.CardID   `json:"cards"`
	Showed []cluekb.PlayerID `json:"showed"`
}

type accusePayload struct {
	Player  cluekb.PlayerID `json:"player"`
	Cards   []cluekb.CardID `json:"cards"`
	Correct bool            `json:"correct"`
}

// wireLine is the on-disk shape of one event line: exactly one of these
// fields is present per line, the JSON object's own key naming the kind.
type wireLine struct {
	Hand    *handPayload    `json:"hand"`
	Show    *showPayload    `json:"show"`
	Suggest *suggestPayload `json:"suggest"`
	Accuse  *accusePayload  `json:"accuse"`
}

func (w wireLine) toLine() (Line, error) {
	present := 0
	var ln Line
	if w.Hand != nil {
		present++
		ln = Line{Kind: KindHand, Player: w.Hand.Player, Cards: w.Hand.Cards}
	}
	if w.Show != nil {
		present++
		ln = Line{Kind: KindShow, Player: w.Show.Player, Card: w.Show.Card}
	}
	if w.Suggest != nil {
		present++
		ln = Line{Kind: KindSuggest, Player: w.Suggest.Player, Cards: w.Suggest.Cards, Showed: w.Suggest.Showed}
	}
	if w.Accuse != nil {
		present++
		ln = Line{Kind: KindAccuse, Player: w.Accuse.Player, Cards: w.Accuse.Cards, Correct: w.Accuse.Correct}
	}
	if present != 1 {
		return Line{}, fmt.Errorf("event must have exactly one of hand, show, suggest, accuse, found %d", present)
	}
	return ln, nil
}

// Decode reads one Line per non-empty line of r.
func Decode(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		var w wireLine
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("gamelog: line %d: %w", lineNo, err)
		}
		ln, err := w.toLine()
		if err != nil {
			return nil, fmt.Errorf("gamelog: line %d: %w", lineNo, err)
		}
		lines = append(lines, ln)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gamelog: %w", err)
	}
	return lines, nil
}

// Apply replays lines against e in order, stopping at the first error.
// Returns the index of the line that failed, or len(lines) on success.
func Apply(e *cluekb.Engine, lines []Line) (int, error) {
	for i, ln := range lines {
		var err error
		switch ln.Kind {
		case KindHand:
			err = e.Hand(ln.Player, ln.Cards)
		case KindShow:
			err = e.Show(ln.Player, ln.Card)
		case KindSuggest:
			_, err = e.Suggest(ln.Player, ln.Cards, ln.Showed)
		case KindAccuse:
			_, err = e.Accuse(ln.Player, ln.Cards, ln.Correct)
		default:
			err = fmt.Errorf("gamelog: line %d: unknown kind %q", i+1, ln.Kind)
		}
		if err != nil {
			return i, err
		}
	}
	return len(lines), nil
}
