package game

import (
	"fmt"
	"strconv"

	"github.com/robalobadob/faustdle/internal/roster"
)

// Placeholder texts for results that reveal nothing.
const (
	TextUnknownBounty = "Unknown Bounty"
	TextUnknownHeight = "Unknown Height"
)

// Comparator scores guesses against a target using a roster's side tables.
type Comparator struct {
	r *roster.Roster
}

// NewComparator returns a Comparator reading lookup tables from r.
func NewComparator(r *roster.Roster) *Comparator {
	return &Comparator{r: r}
}

// Compare scores every compared column of guess against target and returns
// exactly len(roster.Compared) results in column order. The difficulty
// column never appears.
//
// Per column:
//  1. Bounty with the unknown sentinel on either side → unknown, even if equal.
//  2. Equal raw values → match, text formatted for the column.
//  3. Otherwise by kind (see mismatch).
//
// Compare is pure. Tuples whose lookup columns fall outside the side tables
// violate the roster contract and cause a panic.
func (c *Comparator) Compare(guess, target roster.Traits) []Result {
	out := make([]Result, 0, len(roster.Compared))
	for _, col := range roster.Compared {
		g, t := guess[col], target[col]

		if roster.Schema[col] == roster.KindBounty &&
			(g == roster.BountyUnknown || t == roster.BountyUnknown) {
			out = append(out, Result{Column: col, Kind: OutcomeUnknown, Text: TextUnknownBounty})
			continue
		}
		if g == t {
			out = append(out, Result{Column: col, Kind: OutcomeMatch, Text: c.format(col, g)})
			continue
		}
		out = append(out, c.mismatch(col, g, t))
	}
	return out
}

// mismatch builds the result for differing raw values. Text always describes
// the guessed value, never the target.
func (c *Comparator) mismatch(col roster.Column, g, t string) Result {
	switch roster.Schema[col] {
	case roster.KindGender:
		return Result{Column: col, Kind: OutcomeMismatch, Text: GenderText(g)}
	case roster.KindHaki:
		// Haki indexes a lookup table; its order carries no meaning.
		return Result{Column: col, Kind: OutcomeMismatch, Text: c.format(col, g)}
	case roster.KindArc:
		return Result{
			Column:    col,
			Kind:      OutcomeDirectional,
			Direction: Direction(mustIndex(g), mustIndex(t)),
			Text:      c.format(col, g),
		}
	case roster.KindHeight:
		return Result{Column: col, Kind: OutcomeUnknown, Text: TextUnknownHeight}
	default:
		// Bounty and text columns share one numeric rule. A digit value
		// against a non-digit one has no order, so it reads as text.
		if res, ok := numeric(col, g, t); ok {
			return res
		}
		return Result{Column: col, Kind: OutcomeMismatch, Text: Capitalize(g)}
	}
}

// numeric compares two digit strings as integers and keeps the raw guess as
// text. It reports false unless both sides are digit strings that fit int64.
func numeric(col roster.Column, g, t string) (Result, bool) {
	if !roster.IsDigits(g) || !roster.IsDigits(t) {
		return Result{}, false
	}
	gi, gerr := strconv.ParseInt(g, 10, 64)
	ti, terr := strconv.ParseInt(t, 10, 64)
	if gerr != nil || terr != nil {
		return Result{}, false
	}
	return Result{Column: col, Kind: OutcomeDirectional, Direction: Direction(gi, ti), Text: g}, true
}

// format renders a raw value the same way whether it matched or not.
func (c *Comparator) format(col roster.Column, v string) string {
	switch roster.Schema[col] {
	case roster.KindGender:
		return GenderText(v)
	case roster.KindHaki:
		return Capitalize(c.r.Haki(int(mustIndex(v))))
	case roster.KindArc:
		return Capitalize(c.r.Arc(int(mustIndex(v))))
	default:
		return Capitalize(v)
	}
}

// mustIndex parses a lookup column. The roster loader only admits digit
// strings there, so a failure is a caller bug.
func mustIndex(v string) int64 {
	if !roster.IsDigits(v) {
		panic(fmt.Sprintf("game: lookup value %q is not a digit string", v))
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("game: lookup value %q: %v", v, err))
	}
	return n
}
