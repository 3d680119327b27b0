// Package elo estimates the rating change for a completed ranked match.
//
// The real rating system runs server-side and is opaque; this is an
// approximation of its observed behaviour, good enough to annotate replays
// with an expected delta. Do not treat the result as authoritative.
package elo

import "math"

// Match scores from the subject's perspective.
const (
	ScoreWin  = 1.0
	ScoreDraw = 0.5
	ScoreLoss = 0.0
)

// KThreshold selects a K-factor once the absolute rating gap reaches MinGap.
type KThreshold struct {
	MinGap float64
	K      float64
}

// DefaultKTable is the observed K-factor schedule: wider gaps get a larger K,
// reflecting the higher uncertainty of lopsided pairings. Evaluated in
// ascending order, the last matching threshold wins.
var DefaultKTable = []KThreshold{
	{MinGap: 0, K: 22},
	{MinGap: 40, K: 25},
	{MinGap: 100, K: 26},
}

// EstimateDelta returns the estimated rating change for the subject, rounded
// to two decimals, using DefaultKTable.
func EstimateDelta(subjectRating, opponentRating, score float64) float64 {
	return EstimateDeltaWith(DefaultKTable, subjectRating, opponentRating, score)
}

// EstimateDeltaWith is EstimateDelta with an explicit K-factor schedule.
func EstimateDeltaWith(table []KThreshold, subjectRating, opponentRating, score float64) float64 {
	k := kFor(table, math.Abs(subjectRating-opponentRating))
	expected := 1 / (1 + math.Pow(10, (opponentRating-subjectRating)/400))
	return math.Round(k*(score-expected)*100) / 100
}

func kFor(table []KThreshold, gap float64) float64 {
	k := 0.0
	for _, t := range table {
		if gap >= t.MinGap {
			k = t.K
		}
	}
	return k
}
