package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/report"
	"github.com/pable/go-warno-stats/internal/stats"
)

var statsOpponents bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ranked 1v1 statistics from local replays",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsOpponents, "opponents", false, "include the per-opponent record")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	s := stats.Compute1v1(result.OneVsOne)
	out := os.Stdout

	report.PrintOverview(out, "Ranked 1v1", s.Common)
	report.PrintGroupTable(out, "Own divisions", s.Divisions)
	report.PrintGroupTable(out, "Enemy divisions", s.EnemyDivisions)
	report.PrintCountTable(out, "Most faced divisions", s.FrequentEnemyDivisions)
	report.PrintGroupTable(out, "Maps", s.Maps)
	report.PrintBucketTable(out, "By enemy rank", s.ByEnemyRank)
	report.PrintBucketTable(out, "By game duration", s.ByDuration)
	report.PrintRankHistory(out, s.RankHistory)

	if statsOpponents {
		report.PrintOpponents(out, stats.Opponents(result.OneVsOne), aliases)
	}
	return nil
}
