package stats

import "strings"

// TeamKey canonically identifies an unordered pair of ids. The same two-player
// team shows up with its members in either order across replays; sorting
// before joining makes (A,B) and (B,A) the same key.
type TeamKey string

// NewTeamKey builds the canonical key for the pair (a, b).
func NewTeamKey(a, b string) TeamKey {
	if b < a {
		a, b = b, a
	}
	return TeamKey(a + "|" + b)
}

// Parts returns the two ids in canonical order.
func (k TeamKey) Parts() (string, string) {
	a, b, _ := strings.Cut(string(k), "|")
	return a, b
}
