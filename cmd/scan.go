package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan replay directories and summarize what was found",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "1v1 games: %d\n2v2 games: %d\nPlayers seen: %d\n",
		len(result.OneVsOne), len(result.TwoVsTwo), len(result.Seen))

	if len(result.OneVsOne) > 0 {
		last := result.OneVsOne[len(result.OneVsOne)-1]
		fmt.Fprintf(os.Stdout, "Latest 1v1: %s vs %s on %s (%s)\n",
			last.PlayerName, aliases.CommonName(last.EnemyID), last.Map,
			last.CreatedAt.Format("2006-01-02 15:04"))
	}
	if len(result.TwoVsTwo) > 0 {
		last := result.TwoVsTwo[len(result.TwoVsTwo)-1]
		fmt.Fprintf(os.Stdout, "Latest 2v2: with %s on %s (%s)\n",
			aliases.CommonName(last.Ally.ID), last.Map,
			last.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
