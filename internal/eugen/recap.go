package eugen

import "time"

// DailyRecap summarizes one calendar day of ladder games.
type DailyRecap struct {
	Day         time.Time
	GamesPlayed int
	Wins        int
	Losses      int
	EloChange   float64
}

// MergeGames combines cached games with a freshly fetched page. Cached
// entries win on a game id collision; fetched games the cache has not seen
// yet are appended.
func MergeGames(cached, fetched []Game) []Game {
	seen := make(map[string]bool, len(cached))
	merged := make([]Game, 0, len(cached)+len(fetched))
	for _, g := range cached {
		seen[g.GameID] = true
		merged = append(merged, g)
	}
	for _, g := range fetched {
		if seen[g.GameID] {
			continue
		}
		seen[g.GameID] = true
		merged = append(merged, g)
	}
	return merged
}

// SummarizeDay folds the games played on the given UTC calendar day into a
// recap. Games without a timestamp are ignored.
func SummarizeDay(games []Game, day time.Time) DailyRecap {
	recap := DailyRecap{Day: day}
	y, m, d := day.UTC().Date()
	for _, g := range games {
		if g.PlayedAt.IsZero() {
			continue
		}
		gy, gm, gd := g.PlayedAt.UTC().Date()
		if gy != y || gm != m || gd != d {
			continue
		}
		recap.GamesPlayed++
		if g.Result == "victory" {
			recap.Wins++
		} else {
			recap.Losses++
		}
		recap.EloChange += g.Score
	}
	return recap
}
