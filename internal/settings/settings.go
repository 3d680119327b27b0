// Package settings loads and saves the CLI's persistent configuration file.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings is the on-disk configuration. All fields are optional; zero values
// disable the corresponding behavior.
type Settings struct {
	// PlayerIDs are the Eugen user ids whose matches are analyzed. Empty
	// means every subject found in the replays is accepted.
	PlayerIDs []string `json:"playerIds,omitempty"`
	// DateRangeFrom drops replays created before this date (YYYY-MM-DD).
	DateRangeFrom string `json:"dateRangeFrom,omitempty"`
	// ReplayDirectories are scanned in addition to any passed on the
	// command line.
	ReplayDirectories []string `json:"replayDirectories,omitempty"`
	// DailyRecapUser selects whose games the recap command summarizes.
	DailyRecapUser string `json:"dailyRecapUser,omitempty"`
	// SharingDisabled stops the players command from pushing alias data to
	// the shared identity service.
	SharingDisabled bool `json:"playerInfoSharingDisabled,omitempty"`
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "warnostats", "settings.json"), nil
}

// Load reads the settings file at path. A missing file yields zero settings.
func Load(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

// Save writes the settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// TrackedIDs returns PlayerIDs as a membership set, or nil when unrestricted.
func (s Settings) TrackedIDs() map[string]struct{} {
	if len(s.PlayerIDs) == 0 {
		return nil
	}
	ids := make(map[string]struct{}, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		ids[id] = struct{}{}
	}
	return ids
}

// StartDate parses DateRangeFrom. An empty or malformed value yields the zero
// time, which disables the filter.
func (s Settings) StartDate() time.Time {
	if s.DateRangeFrom == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s.DateRangeFrom)
	if err != nil {
		return time.Time{}
	}
	return t
}
