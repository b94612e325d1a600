package selector

import (
	"strings"

	"github.com/robalobadob/faustdle/internal/roster"
)

// Mode selects which difficulty tags are eligible.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeHard   Mode = "hard"
	ModeFiller Mode = "filler"
	ModeDaily  Mode = "daily"
)

// ParseMode normalizes user input. Empty input means normal.
func ParseMode(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeNormal
	}
	return Mode(s)
}

// Allows reports whether a character tagged d may be chosen in mode m:
// normal → E; hard → E or H; filler and any other mode → everything.
func (m Mode) Allows(d roster.Difficulty) bool {
	switch m {
	case ModeNormal:
		return d == roster.Easy
	case ModeHard:
		return d == roster.Easy || d == roster.Hard
	default:
		return true
	}
}
