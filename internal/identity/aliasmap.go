// Package identity resolves player identities across replays. Players change
// their display name freely between matches; the only stable handle is the
// numeric user id the game client assigns. AliasMap counts every (id, name)
// sighting so the most frequently used name wins.
package identity

import (
	"sort"
	"strings"
)

// UnknownName is returned for ids with no recorded sightings.
const UnknownName = "Unknown"

// AliasMap accumulates display-name sightings per player id. Entries are never
// removed; repeated sightings strengthen the signal for the common name.
// Not safe for concurrent mutation.
type AliasMap struct {
	counts map[string]map[string]int
	// order preserves first-seen insertion order per id; it is the tie-break
	// when two names have equal counts.
	order map[string][]string
}

// NewAliasMap returns an empty AliasMap.
func NewAliasMap() *AliasMap {
	return &AliasMap{
		counts: make(map[string]map[string]int),
		order:  make(map[string][]string),
	}
}

// Increment records one sighting of name for the given player id.
// Empty names are ignored.
func (m *AliasMap) Increment(id, name string) {
	if name == "" {
		return
	}
	inner, ok := m.counts[id]
	if !ok {
		inner = make(map[string]int)
		m.counts[id] = inner
	}
	if _, seen := inner[name]; !seen {
		m.order[id] = append(m.order[id], name)
	}
	inner[name]++
}

// Names returns every name recorded for id, ordered by sighting count
// descending. Names with equal counts keep first-seen order.
func (m *AliasMap) Names(id string) []string {
	inner, ok := m.counts[id]
	if !ok {
		return nil
	}
	names := make([]string, len(m.order[id]))
	copy(names, m.order[id])
	sort.SliceStable(names, func(i, j int) bool {
		return inner[names[i]] > inner[names[j]]
	})
	return names
}

// Count returns the number of recorded sightings of name for id.
func (m *AliasMap) Count(id, name string) int {
	return m.counts[id][name]
}

// CommonName returns the most frequently seen name for id, or UnknownName
// when the id has never been observed.
func (m *AliasMap) CommonName(id string) string {
	names := m.Names(id)
	if len(names) == 0 {
		return UnknownName
	}
	return names[0]
}

// Matches reports whether query matches any known name for id. Both sides are
// lowercased and transliterated first, so Cyrillic names can be found with
// their Latin look-alike spelling and vice versa.
func (m *AliasMap) Matches(id, query string) bool {
	normalized := Transliterate(strings.ToLower(query))
	for _, name := range m.Names(id) {
		if strings.Contains(Transliterate(strings.ToLower(name)), normalized) {
			return true
		}
	}
	return false
}

// IDs returns every player id with at least one sighting, sorted.
func (m *AliasMap) IDs() []string {
	ids := make([]string, 0, len(m.counts))
	for id := range m.counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge folds src into m by summing counts. Names unseen by m adopt src's
// insertion order, appended after m's own; merge order therefore affects only
// tie-breaks, never CommonName on distinct counts.
func (m *AliasMap) Merge(src *AliasMap) {
	for id, names := range src.order {
		for _, name := range names {
			m.mergeName(id, name, src.counts[id][name])
		}
	}
}

// MergeNames records one sighting of every given name for id. Remote identity
// lookups feed through here so remote observations rank with the same
// precedence as local ones.
func (m *AliasMap) MergeNames(id string, names []string) {
	for _, name := range names {
		m.Increment(id, name)
	}
}

func (m *AliasMap) mergeName(id, name string, n int) {
	if name == "" || n <= 0 {
		return
	}
	m.Increment(id, name)
	m.counts[id][name] += n - 1
}
