package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/pable/go-warno-stats/internal/division"
	"github.com/pable/go-warno-stats/internal/identity"
	"github.com/pable/go-warno-stats/internal/replay"
)

// Full pipeline over two raw records: normalize, then aggregate.
func TestNormalizeThenAggregate(t *testing.T) {
	decks := map[string]int{"deck-nato": 7, "deck-pact": 102}
	resolver := division.NewResolver(division.Table, func(code string) (int, error) {
		if id, ok := decks[code]; ok {
			return id, nil
		}
		return 0, errors.New("undecodable")
	})

	rawGame := func(created time.Time, resultCode string) replay.RawReplay {
		return replay.RawReplay{
			FileName:  "match.rpl3",
			CreatedAt: created,
			Match: replay.RawMatch{
				Game:       replay.RawGame{Map: "Conquete_2x2_TwoLakes"},
				SubjectKey: "player_0",
				SubjectID:  "42",
				Players: map[string]replay.RawParticipant{
					"player_0": {UserID: "42", Name: "Subject", Rank: "120", Rating: "1500", DeckCode: "deck-nato", Alliance: "0"},
					"player_1": {UserID: "7", Name: "Rival", Rank: "95", Rating: "1480", DeckCode: "deck-pact", Alliance: "1"},
				},
				PlayerCount: 2,
				Result:      replay.RawResult{Duration: "1260", Victory: resultCode},
			},
		}
	}

	aliases := identity.NewAliasMap()
	n := replay.NewNormalizer(resolver, aliases, replay.Config{})
	result := n.NormalizeAll([]replay.RawReplay{
		rawGame(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), "4"),
		rawGame(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), "2"),
	})

	if len(result.OneVsOne) != 2 {
		t.Fatalf("normalized %d games, want 2", len(result.OneVsOne))
	}
	if result.OneVsOne[0].EloDelta <= 0 {
		t.Errorf("victory delta = %f, want positive", result.OneVsOne[0].EloDelta)
	}
	if result.OneVsOne[1].EloDelta >= 0 {
		t.Errorf("defeat delta = %f, want negative", result.OneVsOne[1].EloDelta)
	}

	s := Compute1v1(result.OneVsOne)
	if s.TotalGames != 2 || s.WonGames != 1 {
		t.Fatalf("totals = %d/%d, want 2/1", s.TotalGames, s.WonGames)
	}
	if s.WinRate != 50.0 {
		t.Fatalf("win rate = %f, want 50.0", s.WinRate)
	}
	if len(s.RankHistory) != 2 || !s.RankHistory[0].Date.Before(s.RankHistory[1].Date) {
		t.Fatalf("rank history = %+v", s.RankHistory)
	}
	if aliases.CommonName("7") != "Rival" {
		t.Errorf("opponent alias = %q", aliases.CommonName("7"))
	}
}
