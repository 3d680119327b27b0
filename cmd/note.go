package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/report"
	"github.com/pable/go-warno-stats/internal/stats"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Keep notes on players and teams",
}

var notePlayerCmd = &cobra.Command{
	Use:   "player <eugen-id>",
	Short: "List a player's notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		notes, err := db.ListPlayerNotes(args[0])
		if err != nil {
			return err
		}
		report.PrintNotes(os.Stdout, notes)
		return nil
	},
}

var notePlayerAddCmd = &cobra.Command{
	Use:   "add <eugen-id> <text>...",
	Short: "Add a note on a player",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := db.AddPlayerNote(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, id)
		return nil
	},
}

var notePlayerRmCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Remove a player note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return db.DeletePlayerNote(args[0])
	},
}

var noteTeamCmd = &cobra.Command{
	Use:   "team <eugen-id> <eugen-id>",
	Short: "List a team's notes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		notes, err := db.ListTeamNotes(string(stats.NewTeamKey(args[0], args[1])))
		if err != nil {
			return err
		}
		report.PrintNotes(os.Stdout, notes)
		return nil
	},
}

var noteTeamAddCmd = &cobra.Command{
	Use:   "add <eugen-id> <eugen-id> <text>...",
	Short: "Add a note on a team",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		key := string(stats.NewTeamKey(args[0], args[1]))
		id, err := db.AddTeamNote(key, strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, id)
		return nil
	},
}

var noteTeamRmCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Remove a team note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		return db.DeleteTeamNote(args[0])
	},
}

func init() {
	notePlayerCmd.AddCommand(notePlayerAddCmd)
	notePlayerCmd.AddCommand(notePlayerRmCmd)
	noteTeamCmd.AddCommand(noteTeamAddCmd)
	noteTeamCmd.AddCommand(noteTeamRmCmd)
	noteCmd.AddCommand(notePlayerCmd)
	noteCmd.AddCommand(noteTeamCmd)
}
