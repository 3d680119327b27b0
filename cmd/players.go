package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/eugen"
	"github.com/pable/go-warno-stats/internal/identity"
)

var (
	playersRemote  bool
	playersPush    bool
	identityURL    string
	identityAPIKey string
)

var playersCmd = &cobra.Command{
	Use:   "players [query]",
	Short: "List players seen in replays, optionally filtered by name",
	Long: `List every player observed in the scanned replays with the names they
played under. A query matches aliases case-insensitively, with Cyrillic
look-alike letters folded to their Latin shapes, so "hoba" finds "НоВа".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().BoolVar(&playersRemote, "remote", false, "merge aliases from the shared identity service")
	playersCmd.Flags().BoolVar(&playersPush, "push", false, "upload locally observed aliases to the identity service")
	playersCmd.Flags().StringVar(&identityURL, "identity-url", "", "identity service base URL (falls back to $WARNO_IDENTITY_URL)")
	playersCmd.Flags().StringVar(&identityAPIKey, "identity-key", "", "identity service API key (falls back to $WARNO_IDENTITY_KEY)")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	_, aliases, err := scanReplays(cmd, cfg)
	if err != nil {
		return err
	}

	if playersRemote || playersPush {
		client, err := identityClient()
		if err != nil {
			return err
		}
		if playersRemote {
			if err := mergeRemoteAliases(client, aliases); err != nil {
				return fmt.Errorf("merge remote aliases: %w", err)
			}
		}
		if playersPush {
			if cfg.SharingDisabled {
				return fmt.Errorf("alias sharing is disabled in settings")
			}
			if err := pushAliases(client, aliases); err != nil {
				return fmt.Errorf("push aliases: %w", err)
			}
			fmt.Fprintln(os.Stdout, "aliases uploaded")
		}
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	for _, id := range aliases.IDs() {
		if query != "" && !aliases.Matches(id, query) {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s\t%s\n", id, strings.Join(aliases.Names(id), ", "))
	}
	return nil
}

func identityClient() (*eugen.IdentityClient, error) {
	url := identityURL
	if url == "" {
		url = os.Getenv("WARNO_IDENTITY_URL")
	}
	key := identityAPIKey
	if key == "" {
		key = os.Getenv("WARNO_IDENTITY_KEY")
	}
	if url == "" || key == "" {
		return nil, fmt.Errorf("identity service not configured: set --identity-url/--identity-key or the WARNO_IDENTITY_* env vars")
	}
	return eugen.NewIdentityClient(url, key), nil
}

func mergeRemoteAliases(client *eugen.IdentityClient, aliases *identity.AliasMap) error {
	users, err := client.SearchUsers("")
	if err != nil {
		return err
	}
	for _, u := range users {
		aliases.MergeNames(fmt.Sprint(u.EugenID), u.Usernames)
	}
	log.Debug().Int("users", len(users)).Msg("remote aliases merged")
	return nil
}

func pushAliases(client *eugen.IdentityClient, aliases *identity.AliasMap) error {
	var users []eugen.User
	for _, id := range aliases.IDs() {
		var eugenID uint
		if _, err := fmt.Sscan(id, &eugenID); err != nil {
			continue
		}
		users = append(users, eugen.User{EugenID: eugenID, Usernames: aliases.Names(id)})
	}
	if len(users) == 0 {
		return nil
	}
	return client.PushUsers(users)
}
