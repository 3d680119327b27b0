// Package report renders aggregated statistics as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-warno-stats/internal/eugen"
	"github.com/pable/go-warno-stats/internal/identity"
	"github.com/pable/go-warno-stats/internal/stats"
	"github.com/pable/go-warno-stats/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintOverview prints the headline numbers shared by the 1v1 and 2v2
// reports.
func PrintOverview(w io.Writer, title string, c stats.Common) {
	fmt.Fprintf(w, "\n%s  |  Games: %d  |  Wins: %d  |  Win rate: %.1f%%  |  Avg duration: %s\n",
		title, c.TotalGames, c.WonGames, c.WinRate, formatDuration(int(c.AverageDuration)))
	fmt.Fprintf(w, "Longest win streak: %d  |  Longest loss streak: %d\n\n",
		c.LongestWinStreak, c.LongestLossStreak)
}

// PrintGroupTable prints a win-rate breakdown keyed by a group label.
func PrintGroupTable(w io.Writer, title string, rows []stats.GroupStat) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w)
	table.Header("NAME", "GAMES", "WINS", "WIN%", "SCORE")
	for _, r := range rows {
		table.Append(r.Key,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
			fmt.Sprintf("%.1f", r.WeightedScore()),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintCountTable prints a plain frequency breakdown.
func PrintCountTable(w io.Writer, title string, rows []stats.CountStat) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w)
	table.Header("NAME", "GAMES")
	for _, r := range rows {
		table.Append(r.Key, strconv.Itoa(r.Count))
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintBucketTable prints a fixed-band breakdown; empty bands are shown so
// the band layout stays stable across reports.
func PrintBucketTable(w io.Writer, title string, rows []stats.BucketStat) {
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w)
	table.Header("BUCKET", "GAMES", "WINS", "WIN%")
	for _, r := range rows {
		table.Append(r.Bucket,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintRankHistory prints the subject's ladder-rank snapshots in order.
func PrintRankHistory(w io.Writer, points []stats.RankPoint) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintln(w, "Rank history")
	table := newTable(w)
	table.Header("DATE", "RANK")
	for _, p := range points {
		table.Append(p.Date.Format("2006-01-02"), strconv.Itoa(p.Rank))
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintOpponents prints the per-opponent record, resolving ids to their most
// frequent alias.
func PrintOpponents(w io.Writer, rows []stats.OpponentStat, aliases *identity.AliasMap) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, "Opponents")
	table := newTable(w)
	table.Header("ID", "NAME", "GAMES", "WINS", "WIN%", "LAST PLAYED")
	for _, r := range rows {
		table.Append(r.ID, aliases.CommonName(r.ID),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
			r.LastPlayed.Format("2006-01-02"),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintAllies prints the subject's record alongside each ally.
func PrintAllies(w io.Writer, rows []stats.AllyStat, aliases *identity.AliasMap) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, "Allies")
	table := newTable(w)
	table.Header("ID", "NAME", "GAMES", "WINS", "WIN%", "SCORE")
	for _, r := range rows {
		table.Append(r.AllyID, aliases.CommonName(r.AllyID),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
			fmt.Sprintf("%.1f", r.WeightedScore()),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintPairs prints a division-pairing breakdown.
func PrintPairs(w io.Writer, title string, rows []stats.PairStat) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w)
	table.Header("DIVISION", "WITH", "GAMES", "WINS", "WIN%", "SCORE")
	for _, r := range rows {
		table.Append(r.First, r.Second,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
			fmt.Sprintf("%.1f", r.WeightedScore()),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintEnemyTeams prints the record against each recurring enemy duo.
func PrintEnemyTeams(w io.Writer, rows []stats.TeamStat, aliases *identity.AliasMap) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(w, "Enemy teams")
	table := newTable(w)
	table.Header("TEAM", "GAMES", "WINS", "WIN%", "SCORE")
	for _, r := range rows {
		a, b := r.Key.Parts()
		name := fmt.Sprintf("%s + %s", aliases.CommonName(a), aliases.CommonName(b))
		table.Append(name,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Victories),
			fmt.Sprintf("%.1f%%", r.WinRate),
			fmt.Sprintf("%.1f", r.WeightedScore()),
		)
	}
	table.Render()
	fmt.Fprintln(w)
}

// PrintLeaderboard prints ladder rows with locally known aliases.
func PrintLeaderboard(w io.Writer, rows []eugen.LeaderboardRow, aliases *identity.AliasMap, limit int) {
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	table := newTable(w)
	table.Header("RANK", "ID", "NAME", "ELO")
	for i, r := range rows {
		table.Append(strconv.Itoa(i+1), r.EugenID, aliases.CommonName(r.EugenID),
			fmt.Sprintf("%.1f", r.Elo))
	}
	table.Render()
}

// PrintRecap prints a one-day ladder summary.
func PrintRecap(w io.Writer, r eugen.DailyRecap) {
	fmt.Fprintf(w, "%s  |  Games: %d  |  Wins: %d  |  Losses: %d  |  Elo: %+.1f\n",
		r.Day.Format("2006-01-02"), r.GamesPlayed, r.Wins, r.Losses, r.EloChange)
}

// PrintProfile prints a player's ladder profile. The backend serves every
// field as a string; they are rendered as-is.
func PrintProfile(w io.Writer, eugenID string, p *eugen.Profile) {
	fmt.Fprintf(w, "Player %s  |  Elo: %s  |  Level: %s\n", eugenID, p.ELO, p.Level)
	fmt.Fprintf(w, "Ranked: %s wins / %s losses  |  Ladder rank: %s (%s)\n",
		p.RankedWin, p.RankedLoss, p.LadderRank, p.LadderElo)
	if p.LastGame != "" {
		fmt.Fprintf(w, "Last ranked game: %s\n", p.LastGame)
	}
}

// PrintNotes prints stored notes, oldest first.
func PrintNotes(w io.Writer, notes []storage.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "no notes")
		return
	}
	table := newTable(w)
	table.Header("ID", "DATE", "NOTE")
	for _, n := range notes {
		table.Append(n.ID, n.CreatedAt.Format("2006-01-02"), n.Body)
	}
	table.Render()
}

// formatDuration renders seconds as "33m20s".
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	m := seconds / 60
	s := seconds % 60
	if m == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
