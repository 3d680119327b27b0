package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/eugen"
	"github.com/pable/go-warno-stats/internal/report"
	"github.com/pable/go-warno-stats/internal/storage"
)

var recapDate string

var recapCmd = &cobra.Command{
	Use:   "recap [eugen-id]",
	Short: "Summarize one day of ladder games for a player",
	Long: `Fetch a player's ladder history from the Eugen backend and summarize
the games of a single day: games played, wins, losses and net Elo change.
Without an argument the dailyRecapUser from settings is used. Fetched games
are cached in the local database and merged with earlier fetches, so days
that have dropped off the backend's history page stay summarizable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecap,
}

func init() {
	recapCmd.Flags().StringVar(&recapDate, "date", "", "day to summarize (YYYY-MM-DD, default today)")
	recapCmd.Flags().StringVar(&eugenBaseURL, "eugen-url", "", "override the Eugen backend base URL")
}

func runRecap(cmd *cobra.Command, args []string) error {
	playerID := ""
	if len(args) == 1 {
		playerID = args[0]
	} else {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		playerID = cfg.DailyRecapUser
	}
	if playerID == "" {
		return fmt.Errorf("no player: pass an id or set dailyRecapUser in settings")
	}

	day := time.Now().UTC()
	if recapDate != "" {
		var err error
		day, err = time.Parse("2006-01-02", recapDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", recapDate, err)
		}
	}

	fetched, err := eugen.NewClient(eugenBaseURL).GameHistory(playerID, 0)
	if err != nil {
		return fmt.Errorf("fetch game history: %w", err)
	}

	games := fetched
	if db, err := openDB(); err == nil {
		defer db.Close()
		games = eugen.MergeGames(loadCachedGames(db, playerID), fetched)

		entries := make([]storage.HistoryEntry, len(fetched))
		for i, g := range fetched {
			entries[i] = storage.HistoryEntry{
				GameID:   g.GameID,
				PlayerID: playerID,
				Result:   g.Result,
				Score:    g.Score,
				PlayedAt: g.PlayedAt,
			}
		}
		if err := db.UpsertGameHistory(entries); err != nil {
			log.Warn().Err(err).Msg("caching game history failed")
		}
	} else {
		log.Warn().Err(err).Msg("skipping history cache")
	}

	report.PrintRecap(os.Stdout, eugen.SummarizeDay(games, day))
	return nil
}

// loadCachedGames returns previously fetched games so the recap covers days
// no longer on the backend's first history page.
func loadCachedGames(db *storage.DB, playerID string) []eugen.Game {
	entries, err := db.ListGameHistory(playerID)
	if err != nil {
		log.Warn().Err(err).Msg("reading history cache failed")
		return nil
	}
	games := make([]eugen.Game, len(entries))
	for i, e := range entries {
		games[i] = eugen.Game{
			GameID:   e.GameID,
			Score:    e.Score,
			Result:   e.Result,
			PlayedAt: e.PlayedAt,
		}
	}
	return games
}
