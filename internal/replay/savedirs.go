package replay

import (
	"os"
	"path/filepath"
)

// warnoAppID is the game's Steam app id; replays live under each account's
// userdata/<id>/1611600/remote folder.
const warnoAppID = "1611600"

// DefaultSaveDirs locates replay folders under the local Steam installation,
// one per Steam account that has played the game. Returns nil when Steam is
// not found or no account has a save folder.
func DefaultSaveDirs() []string {
	steamPath, ok := locateSteamPath()
	if !ok {
		return nil
	}
	return saveDirsUnder(steamPath)
}

// locateSteamPath finds the Steam installation: the STEAM_PATH environment
// variable first, then the usual install locations.
func locateSteamPath() (string, bool) {
	if p := os.Getenv("STEAM_PATH"); p != "" {
		if isDir(p) {
			return p, true
		}
		return "", false
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	for _, p := range []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, "Library", "Application Support", "Steam"),
		`C:\Program Files (x86)\Steam`,
		"/usr/local/share/steam",
		"/usr/share/steam",
	} {
		if isDir(p) {
			return p, true
		}
	}
	return "", false
}

func saveDirsUnder(steamPath string) []string {
	userdata := filepath.Join(steamPath, "userdata")
	entries, err := os.ReadDir(userdata)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		remote := filepath.Join(userdata, e.Name(), warnoAppID, "remote")
		if isDir(remote) {
			dirs = append(dirs, remote)
		}
	}
	return dirs
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
