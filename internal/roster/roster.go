// internal/roster/roster.go
//
// Roster holds the static dataset the game is played against:
//   - characters in insertion order (the order seeded draws index into),
//   - the haki and arc side tables referenced by ColHaki / ColArc,
//   - the alias table (alternate spelling → canonical name).
//
// A Roster is validated once in New and never mutated afterwards, so it is
// safe to share between goroutines.

package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every validation failure returned from New.
var ErrInvalid = errors.New("roster: invalid dataset")

// Roster is an immutable, validated character dataset.
type Roster struct {
	entities []Entity
	byName   map[string]int    // canonical name → index
	folded   map[string]string // lowercase name → canonical
	aliases  map[string]string // lowercase alias → canonical
	haki     []string
	arcs     []string
}

// New validates the dataset and builds the lookup indexes.
// aliases maps a canonical name to its alternate spellings.
func New(entities []Entity, haki, arcs []string, aliases map[string][]string) (*Roster, error) {
	r := &Roster{
		entities: append([]Entity(nil), entities...),
		byName:   make(map[string]int, len(entities)),
		folded:   make(map[string]string, len(entities)),
		aliases:  make(map[string]string),
		haki:     append([]string(nil), haki...),
		arcs:     append([]string(nil), arcs...),
	}

	for i, e := range r.entities {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalid, i)
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalid, e.Name)
		}
		if !e.Difficulty().Valid() {
			return nil, fmt.Errorf("%w: %s: difficulty %q not in E/H/F", ErrInvalid, e.Name, e.Traits[ColDifficulty])
		}
		if err := checkIndex(e.Traits[ColHaki], len(r.haki)); err != nil {
			return nil, fmt.Errorf("%w: %s: haki: %v", ErrInvalid, e.Name, err)
		}
		if err := checkIndex(e.Traits[ColArc], len(r.arcs)); err != nil {
			return nil, fmt.Errorf("%w: %s: arc: %v", ErrInvalid, e.Name, err)
		}
		r.byName[e.Name] = i
		// First entry wins when two names differ only by case.
		if _, ok := r.folded[strings.ToLower(e.Name)]; !ok {
			r.folded[strings.ToLower(e.Name)] = e.Name
		}
	}

	for canonical, alts := range aliases {
		if _, ok := r.byName[canonical]; !ok {
			return nil, fmt.Errorf("%w: alias target %q is not in the roster", ErrInvalid, canonical)
		}
		for _, alt := range alts {
			key := strings.ToLower(alt)
			if prev, ok := r.aliases[key]; ok && prev != canonical {
				return nil, fmt.Errorf("%w: alias %q maps to both %q and %q", ErrInvalid, alt, prev, canonical)
			}
			r.aliases[key] = canonical
		}
	}
	return r, nil
}

// checkIndex requires s to be a digit string addressing a table of size n.
func checkIndex(s string, n int) error {
	if !IsDigits(s) {
		return fmt.Errorf("%q is not a table index", s)
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if i >= n {
		return fmt.Errorf("index %d out of range (table has %d entries)", i, n)
	}
	return nil
}

// IsDigits reports whether s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Len returns the number of characters.
func (r *Roster) Len() int { return len(r.entities) }

// At returns the i-th character in roster order.
func (r *Roster) At(i int) Entity { return r.entities[i] }

// Entities returns a copy of all characters in roster order.
func (r *Roster) Entities() []Entity {
	return append([]Entity(nil), r.entities...)
}

// Lookup returns the character with the exact canonical name.
func (r *Roster) Lookup(name string) (Entity, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Entity{}, false
	}
	return r.entities[i], true
}

// Haki returns the haki table entry at i. It panics if i is out of range,
// which New rules out for every loaded character.
func (r *Roster) Haki(i int) string { return r.haki[i] }

// Arc returns the arc table entry at i, with the same contract as Haki.
func (r *Roster) Arc(i int) string { return r.arcs[i] }

// Stats returns counts of loaded data: (characters, aliases).
func (r *Roster) Stats() (characters int, aliases int) {
	return len(r.entities), len(r.aliases)
}
