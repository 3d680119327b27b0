// Package stats aggregates normalized replay collections into derived
// statistics: totals, streaks, per-division and per-map win rates, bucketed
// breakdowns and rank history. All functions are pure over their inputs and
// return zeroed structures for empty collections.
package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/pable/go-warno-stats/internal/replay"
)

// AggregatedStat is one breakdown row: sample size, wins and the raw win rate
// in percent. WinRate is 0 when Games is 0.
type AggregatedStat struct {
	Games     int
	Victories int
	WinRate   float64
}

// WeightedScore returns the AggregatedStat's confidence-weighted ranking
// score; see WeightedScore.
func (s AggregatedStat) WeightedScore() float64 {
	return WeightedScore(s.WinRate, s.Games)
}

// GroupStat is an AggregatedStat keyed by a group label (division, map).
type GroupStat struct {
	Key string
	AggregatedStat
}

// CountStat is a plain frequency row.
type CountStat struct {
	Key   string
	Count int
}

// BucketStat is an AggregatedStat for one fixed numeric band.
type BucketStat struct {
	Bucket string
	AggregatedStat
}

// RankPoint is one ladder-rank snapshot.
type RankPoint struct {
	Date time.Time
	Rank int
}

// Common holds the statistics shared by the 1v1 and 2v2 reports.
type Common struct {
	TotalGames        int
	WonGames          int
	WinRate           float64
	LongestWinStreak  int
	LongestLossStreak int
	AverageDuration   float64 // seconds
	Divisions         []GroupStat
	Maps              []GroupStat
}

// Stats1v1 is the full 1v1 report.
type Stats1v1 struct {
	Common
	EnemyDivisions         []GroupStat
	FrequentEnemyDivisions []CountStat
	RankHistory            []RankPoint
	ByEnemyRank            []BucketStat
	ByDuration             []BucketStat
}

// OpponentStat summarizes all games against one opponent, from the subject's
// perspective.
type OpponentStat struct {
	ID string
	AggregatedStat
	LastPlayed time.Time
}

// VictoryRatio returns won/total as a percentage, or 0 for an empty sample.
func VictoryRatio(won, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(won) / float64(total) * 100
}

// WeightedScore discounts a raw win rate by sample size so that breakdown
// rows rank sensibly: a 100% rate over one game scores below a 60% rate over
// thirty. Holding the rate fixed, the score strictly increases with games,
// approaching the raw rate asymptotically.
func WeightedScore(winRate float64, games int) float64 {
	if games == 0 {
		return 0
	}
	return winRate * (1 - math.Exp(-float64(games)/5))
}

// Compute1v1 aggregates a chronologically ordered 1v1 replay collection.
func Compute1v1(replays []replay.Replay1v1) Stats1v1 {
	games := make([]game, len(replays))
	for i, r := range replays {
		games[i] = game{result: r.Result, division: r.Division, mapName: r.Map, duration: r.Duration}
	}

	enemyDivisions := newTally()
	frequency := make(map[string]int)
	byRank := newBuckets(rankBucketLabels)
	byDuration := newBuckets(durationBucketLabels)
	var history []RankPoint

	for _, r := range replays {
		won := r.Result == replay.Victory
		if r.EnemyDivision != "" {
			enemyDivisions.add(r.EnemyDivision, won)
			frequency[r.EnemyDivision]++
		}
		if enemyRank, err := strconv.Atoi(r.EnemyRank); err == nil && enemyRank > 0 {
			byRank.add(rankBucketIndex(enemyRank), won)
		}
		byDuration.add(durationBucketIndex(r.Duration), won)
		if rank, err := strconv.Atoi(r.Rank); err == nil && rank > 0 {
			history = append(history, RankPoint{Date: r.CreatedAt, Rank: rank})
		}
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date.Before(history[j].Date) })

	return Stats1v1{
		Common:                 computeCommon(games),
		EnemyDivisions:         enemyDivisions.sorted(),
		FrequentEnemyDivisions: sortedCounts(frequency),
		RankHistory:            history,
		ByEnemyRank:            byRank.rows(),
		ByDuration:             byDuration.rows(),
	}
}

// Opponents groups a 1v1 collection by enemy id. Rows are ordered by game
// count descending so regular opponents surface first.
func Opponents(replays []replay.Replay1v1) []OpponentStat {
	type acc struct {
		games, wins int
		last        time.Time
	}
	byID := make(map[string]*acc)
	for _, r := range replays {
		a, ok := byID[r.EnemyID]
		if !ok {
			a = &acc{}
			byID[r.EnemyID] = a
		}
		a.games++
		if r.Result == replay.Victory {
			a.wins++
		}
		if r.CreatedAt.After(a.last) {
			a.last = r.CreatedAt
		}
	}

	rows := make([]OpponentStat, 0, len(byID))
	for id, a := range byID {
		rows = append(rows, OpponentStat{
			ID:             id,
			AggregatedStat: AggregatedStat{Games: a.games, Victories: a.wins, WinRate: VictoryRatio(a.wins, a.games)},
			LastPlayed:     a.last,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// game is the per-replay projection common aggregation works over.
type game struct {
	result   replay.Outcome
	division string
	mapName  string
	duration int
}

func computeCommon(games []game) Common {
	divisions := newTally()
	maps := newTally()
	won := 0
	totalDuration := 0

	winStreak, lossStreak := 0, 0
	longestWin, longestLoss := 0, 0

	for _, g := range games {
		isWin := g.result == replay.Victory
		if isWin {
			won++
		}
		totalDuration += g.duration
		if g.division != "" {
			divisions.add(g.division, isWin)
		}
		if g.mapName != "" {
			maps.add(g.mapName, isWin)
		}

		// A draw is neither a win nor a loss: it resets both counters.
		switch g.result {
		case replay.Victory:
			winStreak++
			lossStreak = 0
			longestWin = max(longestWin, winStreak)
		case replay.Defeat:
			lossStreak++
			winStreak = 0
			longestLoss = max(longestLoss, lossStreak)
		default:
			winStreak, lossStreak = 0, 0
		}
	}

	avg := 0.0
	if len(games) > 0 {
		avg = float64(totalDuration) / float64(len(games))
	}

	return Common{
		TotalGames:        len(games),
		WonGames:          won,
		WinRate:           VictoryRatio(won, len(games)),
		LongestWinStreak:  longestWin,
		LongestLossStreak: longestLoss,
		AverageDuration:   avg,
		Divisions:         divisions.sorted(),
		Maps:              maps.sorted(),
	}
}

// tally accumulates wins/games per string key.
type tally struct {
	rows  map[string]*AggregatedStat
	order []string
}

func newTally() *tally {
	return &tally{rows: make(map[string]*AggregatedStat)}
}

func (t *tally) add(key string, won bool) {
	row, ok := t.rows[key]
	if !ok {
		row = &AggregatedStat{}
		t.rows[key] = row
		t.order = append(t.order, key)
	}
	row.Games++
	if won {
		row.Victories++
	}
	row.WinRate = VictoryRatio(row.Victories, row.Games)
}

// sorted returns the rows ordered by weighted score descending; ties fall
// back to sample size, then key, for deterministic output.
func (t *tally) sorted() []GroupStat {
	rows := make([]GroupStat, 0, len(t.rows))
	for _, key := range t.order {
		rows = append(rows, GroupStat{Key: key, AggregatedStat: *t.rows[key]})
	}
	sort.Slice(rows, func(i, j int) bool {
		si, sj := rows[i].WeightedScore(), rows[j].WeightedScore()
		if si != sj {
			return si > sj
		}
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

func sortedCounts(m map[string]int) []CountStat {
	rows := make([]CountStat, 0, len(m))
	for key, count := range m {
		rows = append(rows, CountStat{Key: key, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}
