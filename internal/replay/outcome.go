package replay

import "github.com/pable/go-warno-stats/internal/elo"

// Outcome is a normalized match result from the subject's perspective.
type Outcome string

const (
	Victory Outcome = "Victory"
	Defeat  Outcome = "Defeat"
	Draw    Outcome = "Draw"
)

// Result codes observed in current game builds. These shift between patches
// (older builds used "4"/"5" for wins and were missing "6"), so they live here
// as named sets rather than inline literals; correct them against a fresh
// sample after a patch, not at call sites.
var (
	victoryCodes = map[string]struct{}{"4": {}, "5": {}, "6": {}}
	defeatCodes  = map[string]struct{}{"2": {}}
)

// ClassifyOutcome maps a raw result code to an Outcome. Unknown or missing
// codes classify as Draw. Pure and total over all inputs.
func ClassifyOutcome(code string) Outcome {
	if _, ok := victoryCodes[code]; ok {
		return Victory
	}
	if _, ok := defeatCodes[code]; ok {
		return Defeat
	}
	return Draw
}

// Score converts the outcome to the subject's match score for rating
// estimation.
func (o Outcome) Score() float64 {
	switch o {
	case Victory:
		return elo.ScoreWin
	case Defeat:
		return elo.ScoreLoss
	default:
		return elo.ScoreDraw
	}
}
