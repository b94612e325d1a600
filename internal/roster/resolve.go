package roster

import "strings"

// Resolve maps typed input to a canonical character name.
// Roster names are matched case-insensitively first, then aliases.
// There is no partial or fuzzy matching; a miss returns ("", false).
func (r *Roster) Resolve(input string) (string, bool) {
	key := strings.ToLower(input)
	if name, ok := r.folded[key]; ok {
		return name, true
	}
	if name, ok := r.aliases[key]; ok {
		return name, true
	}
	return "", false
}
