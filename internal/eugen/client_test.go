package eugen

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLeaderboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/_design/LB29/_view/freezed_ELO" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"total_rows":4,"offset":0,"rows":[
			{"id":"u29_29370","key":1,"value":"2103.5"},
			{"id":"u29_18552","key":2,"value":"1987"},
			{"id":"malformed","key":3,"value":"1900"},
			{"id":"u29_555","key":4,"value":"not-a-number"}
		]}`)
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL).Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (malformed rows skipped)", len(rows))
	}
	if rows[0].EugenID != "29370" || rows[0].Elo != 2103.5 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
}

func TestProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/u29_29370" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"ELO":"2103.5","ranked_win":"312","ranked_loss":"288","ELO_LB_rank":"47","@level":"120"}`)
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL).Profile("29370")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.ELO != "2103.5" || p.RankedWin != "312" || p.LadderRank != "47" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestProfileHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Profile("29370"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

const historyPage = `
<a href="/gamehistory/game?gameid=aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa">game</a>
(12/3 14.0)
<script>myDate=new Date(1709287200000.0)</script>
<a href="/gamehistory/game?gameid=bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb">game</a>
(8/9 -11.5)
<script>myDate=new Date(1709290800000.0)</script>
<a href="/gamehistory/game?gameid=cccccccccccccccccccccccccccccccc">game</a>
(4/4)
`

func TestParseGameHistory(t *testing.T) {
	games := parseGameHistory(historyPage)
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2 (unranked entry skipped)", len(games))
	}

	if games[0].GameID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("game id = %s", games[0].GameID)
	}
	if games[0].Result != "victory" || games[0].Score != 14.0 {
		t.Errorf("games[0] = %+v", games[0])
	}
	if games[1].Result != "defeat" || games[1].Score != -11.5 {
		t.Errorf("games[1] = %+v", games[1])
	}
	want := time.Unix(1709287200, 0).UTC()
	if !games[0].PlayedAt.Equal(want) {
		t.Errorf("played at = %v, want %v", games[0].PlayedAt, want)
	}
}

func TestGameHistoryEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gamehistory/list" || r.URL.Query().Get("userid") != "29370" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, historyPage)
	}))
	defer srv.Close()

	games, err := NewClient(srv.URL).GameHistory("29370", 0)
	if err != nil {
		t.Fatalf("GameHistory: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games", len(games))
	}
}

func TestSummarizeDay(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	games := []Game{
		{Result: "victory", Score: 14, PlayedAt: day.Add(10 * time.Hour)},
		{Result: "defeat", Score: -11.5, PlayedAt: day.Add(12 * time.Hour)},
		{Result: "victory", Score: 9, PlayedAt: day.AddDate(0, 0, -1)},
		{Result: "victory", Score: 5}, // no timestamp
	}
	recap := SummarizeDay(games, day)
	if recap.GamesPlayed != 2 || recap.Wins != 1 || recap.Losses != 1 {
		t.Fatalf("recap = %+v", recap)
	}
	if recap.EloChange != 2.5 {
		t.Fatalf("elo change = %f, want 2.5", recap.EloChange)
	}
}

func TestMergeGames(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cached := []Game{
		{GameID: "old", Result: "victory", Score: 9, PlayedAt: day.AddDate(0, 0, -3)},
		{GameID: "both", Result: "defeat", Score: -11.5, PlayedAt: day},
	}
	fetched := []Game{
		{GameID: "both", Result: "defeat", Score: -11.5, PlayedAt: day},
		{GameID: "new", Result: "victory", Score: 14, PlayedAt: day.Add(2 * time.Hour)},
	}

	merged := MergeGames(cached, fetched)
	if len(merged) != 3 {
		t.Fatalf("got %d games, want 3", len(merged))
	}
	ids := map[string]int{}
	for _, g := range merged {
		ids[g.GameID]++
	}
	if ids["both"] != 1 {
		t.Errorf("game cached and fetched counted %d times", ids["both"])
	}
	if ids["old"] != 1 || ids["new"] != 1 {
		t.Errorf("merged ids = %v", ids)
	}

	// A day only present in the cache must still be summarizable.
	recap := SummarizeDay(merged, day.AddDate(0, 0, -3))
	if recap.GamesPlayed != 1 || recap.Wins != 1 {
		t.Fatalf("recap over cached-only day = %+v", recap)
	}
}
