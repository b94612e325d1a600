// Package daily derives the shared daily challenge from the calendar date.
// Every player gets the same target on the same UTC day because the seed is
// a pure function of the date.
package daily

import (
	"fmt"
	"time"
)

const seedPrefix = "daily-"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Seed returns the selection seed for the day containing t.
func Seed(t time.Time) string {
	return seedPrefix + DateKey(t)
}

// Number returns the 1-based puzzle number of t's day counted from epoch.
// Days before the epoch yield values below 1.
func Number(t, epoch time.Time) int {
	day := truncate(t)
	start := truncate(epoch)
	return int(day.Sub(start).Hours()/24) + 1
}

// ParseEpoch parses a YYYY-MM-DD epoch date as UTC midnight.
func ParseEpoch(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("daily: parse epoch %q: %w", s, err)
	}
	return t, nil
}

// Challenge describes one day's puzzle.
type Challenge struct {
	Date   string `json:"date"`
	Number int    `json:"number"`
	Seed   string `json:"seed"`
}

// For returns the challenge for the day containing t.
func For(t, epoch time.Time) Challenge {
	return Challenge{Date: DateKey(t), Number: Number(t, epoch), Seed: Seed(t)}
}

func truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
