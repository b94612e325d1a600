package assets

import "embed"

//go:embed roster.yaml
var FS embed.FS

// RosterYAML returns the bundled character dataset.
func RosterYAML() ([]byte, error) {
	return FS.ReadFile("roster.yaml")
}
