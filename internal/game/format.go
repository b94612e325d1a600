package game

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// GenderText renders a gender code for display.
func GenderText(code string) string {
	switch code {
	case "m":
		return "Male"
	case "f":
		return "Female"
	default:
		return "Other"
	}
}
