package game

import "strings"

// Glyphs used in the shareable summary.
const (
	GlyphMatch = "🟩"
	GlyphUp    = "⬆️"
	GlyphDown  = "⬇️"
	GlyphOther = "🟥"
)

// Glyph maps a single result to its summary glyph.
func Glyph(r Result) string {
	switch {
	case r.Kind == OutcomeMatch:
		return GlyphMatch
	case r.Direction == DirUp:
		return GlyphUp
	case r.Direction == DirDown:
		return GlyphDown
	default:
		return GlyphOther
	}
}

// SummarizeHistory renders one line per guess, newest first.
func SummarizeHistory(history []Guess) string {
	lines := make([]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		var b strings.Builder
		for _, r := range history[i].Results {
			b.WriteString(Glyph(r))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Summary renders the game's shareable result. Scramble games collapse to a
// single square; unfinished scramble games have no summary.
func (g *Game) Summary() string {
	if g.Scramble {
		switch g.State() {
		case StateWon:
			return GlyphMatch
		case StateLost:
			return GlyphOther
		default:
			return ""
		}
	}
	return SummarizeHistory(g.History)
}
