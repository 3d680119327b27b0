package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export normalized 1v1 games as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	result, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"date", "map", "duration_s", "result",
		"division", "rating", "rank",
		"enemy_id", "enemy_name", "enemy_division", "enemy_rating", "enemy_rank",
		"elo_delta",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range result.OneVsOne {
		record := []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Map,
			strconv.Itoa(r.Duration),
			string(r.Result),
			r.Division,
			strconv.Itoa(r.PlayerRating),
			r.Rank,
			r.EnemyID,
			aliases.CommonName(r.EnemyID),
			r.EnemyDivision,
			strconv.Itoa(r.EnemyRating),
			r.EnemyRank,
			strconv.FormatFloat(r.EloDelta, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
