package stats

import "github.com/pable/go-warno-stats/internal/replay"

// AllyStat is one ally's aggregated record from the subject's perspective.
type AllyStat struct {
	AllyID string
	AggregatedStat
}

// PairStat is an AggregatedStat over a division pairing. For ally pairs First
// is always the subject's division; for enemy pairs the two names are sorted
// so the pairing is order-independent.
type PairStat struct {
	First  string
	Second string
	AggregatedStat
}

// TeamStat is an AggregatedStat over a canonical enemy team key.
type TeamStat struct {
	Key TeamKey
	AggregatedStat
}

// Stats2v2 is the full 2v2 report.
type Stats2v2 struct {
	Common
	Allies             []AllyStat
	AllyDivisionPairs  []PairStat
	EnemyTeams         []TeamStat
	EnemyDivisionPairs []PairStat
}

// Compute2v2 aggregates a chronologically ordered 2v2 replay collection.
// Enemy teams are keyed by the canonical sorted pair of enemy ids, so the
// same duo accumulates into one row regardless of seat order.
func Compute2v2(replays []replay.Replay2v2) Stats2v2 {
	games := make([]game, len(replays))
	for i, r := range replays {
		games[i] = game{result: r.Result, division: r.Division, mapName: r.Map, duration: r.Duration}
	}

	allies := newTally()
	allyPairs := newPairTally()
	enemyTeams := newTally()
	enemyPairs := newPairTally()

	for _, r := range replays {
		won := r.Result == replay.Victory
		if r.Ally.ID != "" {
			allies.add(r.Ally.ID, won)
		}
		if r.Division != "" && r.Ally.Division != "" {
			allyPairs.add(r.Division, r.Ally.Division, won)
		}
		enemyTeams.add(string(NewTeamKey(r.Enemies[0].ID, r.Enemies[1].ID)), won)
		first, second := r.Enemies[0].Division, r.Enemies[1].Division
		if first != "" && second != "" {
			if second < first {
				first, second = second, first
			}
			enemyPairs.add(first, second, won)
		}
	}

	return Stats2v2{
		Common:             computeCommon(games),
		Allies:             allyRows(allies),
		AllyDivisionPairs:  allyPairs.sorted(),
		EnemyTeams:         teamRows(enemyTeams),
		EnemyDivisionPairs: enemyPairs.sorted(),
	}
}

func allyRows(t *tally) []AllyStat {
	groups := t.sorted()
	rows := make([]AllyStat, len(groups))
	for i, g := range groups {
		rows[i] = AllyStat{AllyID: g.Key, AggregatedStat: g.AggregatedStat}
	}
	return rows
}

func teamRows(t *tally) []TeamStat {
	groups := t.sorted()
	rows := make([]TeamStat, len(groups))
	for i, g := range groups {
		rows[i] = TeamStat{Key: TeamKey(g.Key), AggregatedStat: g.AggregatedStat}
	}
	return rows
}

// pairTally is a tally over division pairings, keeping the pair's two names
// alongside the aggregate.
type pairTally struct {
	tally *tally
	pairs map[string][2]string
}

func newPairTally() *pairTally {
	return &pairTally{tally: newTally(), pairs: make(map[string][2]string)}
}

func (p *pairTally) add(first, second string, won bool) {
	key := first + "|" + second
	if _, ok := p.pairs[key]; !ok {
		p.pairs[key] = [2]string{first, second}
	}
	p.tally.add(key, won)
}

func (p *pairTally) sorted() []PairStat {
	groups := p.tally.sorted()
	rows := make([]PairStat, len(groups))
	for i, g := range groups {
		pair := p.pairs[g.Key]
		rows[i] = PairStat{First: pair[0], Second: pair[1], AggregatedStat: g.AggregatedStat}
	}
	return rows
}
