package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/report"
	"github.com/pable/go-warno-stats/internal/stats"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Show the record against recurring enemy 2v2 teams",
	Args:  cobra.NoArgs,
	RunE:  runTeams,
}

func runTeams(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	s := stats.Compute2v2(result.TwoVsTwo)
	report.PrintEnemyTeams(os.Stdout, s.EnemyTeams, aliases)
	return nil
}
