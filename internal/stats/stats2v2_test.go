package stats

import (
	"testing"

	"github.com/pable/go-warno-stats/internal/replay"
)

func game2v2(n int, result replay.Outcome, allyID string, enemies [2]replay.TeamPlayer) replay.Replay2v2 {
	return replay.Replay2v2{
		CommonReplayData: replay.CommonReplayData{
			CreatedAt: day(n),
			PlayerID:  "100",
			Division:  "82nd Airborne",
			Duration:  1800,
			Map:       "Two Lakes",
			Result:    result,
		},
		Ally:    replay.TeamPlayer{ID: allyID, Division: "11e Parachutistes"},
		Enemies: enemies,
	}
}

func TestCompute2v2(t *testing.T) {
	duoA := [2]replay.TeamPlayer{
		{ID: "300", Division: "79-ya Gv. Tankovaya Diviziya"},
		{ID: "400", Division: "35-ya Gv. VDV"},
	}
	// Same duo, seats flipped.
	duoB := [2]replay.TeamPlayer{duoA[1], duoA[0]}

	replays := []replay.Replay2v2{
		game2v2(1, replay.Victory, "200", duoA),
		game2v2(2, replay.Defeat, "200", duoB),
		game2v2(3, replay.Victory, "250", duoA),
	}
	s := Compute2v2(replays)

	if s.TotalGames != 3 || s.WonGames != 2 {
		t.Fatalf("totals = %d/%d, want 3/2", s.TotalGames, s.WonGames)
	}

	if len(s.Allies) != 2 {
		t.Fatalf("got %d allies, want 2", len(s.Allies))
	}
	for _, a := range s.Allies {
		switch a.AllyID {
		case "200":
			if a.Games != 2 || a.Victories != 1 {
				t.Fatalf("ally 200 = %+v", a)
			}
		case "250":
			if a.Games != 1 || a.Victories != 1 {
				t.Fatalf("ally 250 = %+v", a)
			}
		default:
			t.Fatalf("unexpected ally %s", a.AllyID)
		}
	}

	// Both seat orders collapse into a single canonical team row.
	if len(s.EnemyTeams) != 1 {
		t.Fatalf("got %d enemy teams, want 1", len(s.EnemyTeams))
	}
	team := s.EnemyTeams[0]
	if team.Key != NewTeamKey("300", "400") || team.Games != 3 || team.Victories != 2 {
		t.Fatalf("enemy team = %+v", team)
	}

	if len(s.AllyDivisionPairs) != 1 {
		t.Fatalf("ally pairs = %+v", s.AllyDivisionPairs)
	}
	pair := s.AllyDivisionPairs[0]
	if pair.First != "82nd Airborne" || pair.Second != "11e Parachutistes" {
		t.Fatalf("ally pair order = %+v", pair)
	}

	// Enemy division pairs are sorted so seat order does not split rows.
	if len(s.EnemyDivisionPairs) != 1 {
		t.Fatalf("enemy pairs = %+v", s.EnemyDivisionPairs)
	}
	ep := s.EnemyDivisionPairs[0]
	if ep.First != "35-ya Gv. VDV" || ep.Second != "79-ya Gv. Tankovaya Diviziya" || ep.Games != 3 {
		t.Fatalf("enemy pair = %+v", ep)
	}
}

func TestCompute2v2Empty(t *testing.T) {
	s := Compute2v2(nil)
	if s.TotalGames != 0 || len(s.Allies) != 0 || len(s.EnemyTeams) != 0 {
		t.Fatalf("empty input produced rows: %+v", s)
	}
}
