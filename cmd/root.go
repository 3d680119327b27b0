package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pable/go-warno-stats/internal/deck"
	"github.com/pable/go-warno-stats/internal/division"
	"github.com/pable/go-warno-stats/internal/identity"
	"github.com/pable/go-warno-stats/internal/replay"
	"github.com/pable/go-warno-stats/internal/settings"
	"github.com/pable/go-warno-stats/internal/storage"
)

var (
	dbPath       string
	settingsPath string
	replayDirs   []string
	verbose      bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "warnostats",
	Short: "WARNO replay statistics tool",
	Long:  "Scan WARNO .rpl3 replays and compute ranked 1v1 and 2v2 statistics.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".warnostats", "warnostats.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to settings file (default per-user config dir)")
	rootCmd.PersistentFlags().StringSliceVar(&replayDirs, "dirs", nil, "replay directories to scan (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stats2v2Cmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(recapCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// loadSettings reads the settings file, falling back to the per-user default
// location when --settings is not given.
func loadSettings() (settings.Settings, error) {
	path := settingsPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// scanReplays runs the scan-and-normalize pipeline over the configured replay
// directories, falling back to the local Steam save folders when none are
// configured, and returns the accepted matches plus the alias observations
// collected along the way.
func scanReplays(cmd *cobra.Command, cfg settings.Settings) (replay.ParseResult, *identity.AliasMap, error) {
	dirs := append([]string{}, cfg.ReplayDirectories...)
	dirs = append(dirs, replayDirs...)
	if len(dirs) == 0 {
		dirs = replay.DefaultSaveDirs()
		if len(dirs) == 0 {
			return replay.ParseResult{}, nil, fmt.Errorf("no replay directories: pass --dirs, set replayDirectories in settings, or set STEAM_PATH")
		}
		log.Debug().Strs("dirs", dirs).Msg("using discovered save folders")
	}

	raws, err := replay.NewScanner(log).Scan(cmd.Context(), dirs)
	if err != nil {
		return replay.ParseResult{}, nil, fmt.Errorf("scan replays: %w", err)
	}
	log.Debug().Int("files", len(raws)).Msg("replays scanned")

	aliases := identity.NewAliasMap()
	resolver := division.NewResolver(division.Table, deck.DivisionID)
	normalizer := replay.NewNormalizer(resolver, aliases, replay.Config{
		TrackedIDs: cfg.TrackedIDs(),
		StartDate:  cfg.StartDate(),
	})
	return normalizer.NormalizeAll(raws), aliases, nil
}

// openDB opens the notes/history database, creating its directory if needed.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}
