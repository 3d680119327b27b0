package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/report"
	"github.com/pable/go-warno-stats/internal/stats"
)

var stats2v2Cmd = &cobra.Command{
	Use:   "stats2v2",
	Short: "Show ranked 2v2 statistics from local replays",
	Args:  cobra.NoArgs,
	RunE:  runStats2v2,
}

func runStats2v2(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	s := stats.Compute2v2(result.TwoVsTwo)
	out := os.Stdout

	report.PrintOverview(out, "Ranked 2v2", s.Common)
	report.PrintAllies(out, s.Allies, aliases)
	report.PrintPairs(out, "Own division pairs", s.AllyDivisionPairs)
	report.PrintEnemyTeams(out, s.EnemyTeams, aliases)
	report.PrintPairs(out, "Enemy division pairs", s.EnemyDivisionPairs)
	report.PrintGroupTable(out, "Maps", s.Maps)
	return nil
}
