package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/eugen"
	"github.com/pable/go-warno-stats/internal/identity"
	"github.com/pable/go-warno-stats/internal/report"
)

var (
	leaderboardTop   int
	leaderboardLocal bool
	eugenBaseURL     string
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the ranked ladder with locally known player names",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardTop, "top", 50, "number of rows to show (0 for all)")
	leaderboardCmd.Flags().BoolVar(&leaderboardLocal, "resolve", true, "resolve ids to names seen in local replays")
	leaderboardCmd.Flags().StringVar(&eugenBaseURL, "eugen-url", "", "override the Eugen backend base URL")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	rows, err := eugen.NewClient(eugenBaseURL).Leaderboard()
	if err != nil {
		return fmt.Errorf("fetch leaderboard: %w", err)
	}

	aliases := identity.NewAliasMap()
	if leaderboardLocal {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		if _, local, err := scanReplays(cmd, cfg); err == nil {
			aliases = local
		} else {
			log.Warn().Err(err).Msg("replay scan failed, showing ids only")
		}
	}

	report.PrintLeaderboard(os.Stdout, rows, aliases, leaderboardTop)
	return nil
}
