// internal/roster/types.go
//
// Core data model for the character roster.
// Defines:
//   - Traits: the fixed ten-column tuple stored for every character.
//   - Column: named trait columns (no bare indices outside this package).
//   - Kind / Schema: explicit per-column trait kinds consulted by the comparator.
//   - Difficulty: the E/H/F tag that drives mode eligibility.

package roster

import "fmt"

// NumColumns is the width of every trait tuple.
const NumColumns = 10

// Traits is the raw, immutable trait tuple of a character.
type Traits [NumColumns]string

// Column names a position in Traits.
type Column int

const (
	ColGender Column = iota
	ColAffiliation
	ColFruit
	ColHaki
	ColBounty
	ColHeight
	ColOrigin
	ColArc
	ColStatus
	ColDifficulty
)

var columnNames = [NumColumns]string{
	"gender", "affiliation", "fruit", "haki", "bounty",
	"height", "origin", "arc", "status", "difficulty",
}

// String returns the lowercase column name.
func (c Column) String() string {
	if c < 0 || int(c) >= NumColumns {
		return "invalid"
	}
	return columnNames[c]
}

// MarshalText encodes the column by name.
func (c Column) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a column name written by MarshalText.
func (c *Column) UnmarshalText(b []byte) error {
	for i, n := range columnNames {
		if n == string(b) {
			*c = Column(i)
			return nil
		}
	}
	return fmt.Errorf("roster: unknown column %q", b)
}

// Kind describes how a column is formatted and compared.
type Kind int

const (
	KindText       Kind = iota // free text, capitalized for display
	KindGender                 // 'm' / 'f' / other
	KindHaki                   // digit string indexing the haki table
	KindBounty                 // integer string, "1" means unknown
	KindHeight                 // never revealed on mismatch
	KindArc                    // digit string indexing the (ordered) arc table
	KindDifficulty             // E/H/F, never compared
)

// Schema is the column → kind table. It is the single source of truth for
// the comparison rules; Compared lists the columns that produce results.
var Schema = [NumColumns]Kind{
	ColGender:      KindGender,
	ColAffiliation: KindText,
	ColFruit:       KindText,
	ColHaki:        KindHaki,
	ColBounty:      KindBounty,
	ColHeight:      KindHeight,
	ColOrigin:      KindText,
	ColArc:         KindArc,
	ColStatus:      KindText,
	ColDifficulty:  KindDifficulty,
}

// Compared is every column except ColDifficulty, in tuple order.
var Compared = []Column{
	ColGender, ColAffiliation, ColFruit, ColHaki, ColBounty,
	ColHeight, ColOrigin, ColArc, ColStatus,
}

// BountyUnknown is the sentinel stored in ColBounty when the bounty is unknown.
const BountyUnknown = "1"

// Difficulty is the tag stored in ColDifficulty.
type Difficulty string

const (
	Easy   Difficulty = "E"
	Hard   Difficulty = "H"
	Filler Difficulty = "F"
)

// Valid reports whether d is one of E, H, F.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Hard || d == Filler
}

// Entity is a named character and its traits.
type Entity struct {
	Name   string `json:"name"`
	Traits Traits `json:"traits"`
}

// Difficulty returns the entity's difficulty tag.
func (e Entity) Difficulty() Difficulty { return Difficulty(e.Traits[ColDifficulty]) }
