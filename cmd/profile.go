package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/eugen"
	"github.com/pable/go-warno-stats/internal/report"
)

var profileCmd = &cobra.Command{
	Use:   "profile <eugen-id>",
	Short: "Show a player's ladder profile from the Eugen backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&eugenBaseURL, "eugen-url", "", "override the Eugen backend base URL")
}

func runProfile(cmd *cobra.Command, args []string) error {
	p, err := eugen.NewClient(eugenBaseURL).Profile(args[0])
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	report.PrintProfile(os.Stdout, args[0], p)
	return nil
}
