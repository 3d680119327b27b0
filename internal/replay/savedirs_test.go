package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveDirsUnderSteamPath(t *testing.T) {
	steam := t.TempDir()
	withSaves := filepath.Join(steam, "userdata", "11111111", warnoAppID, "remote")
	if err := os.MkdirAll(withSaves, 0o755); err != nil {
		t.Fatal(err)
	}
	// A second account that never played the game.
	if err := os.MkdirAll(filepath.Join(steam, "userdata", "22222222", "730"), 0o755); err != nil {
		t.Fatal(err)
	}

	dirs := saveDirsUnder(steam)
	if len(dirs) != 1 || dirs[0] != withSaves {
		t.Errorf("saveDirsUnder = %v, want [%s]", dirs, withSaves)
	}

	if got := saveDirsUnder(filepath.Join(steam, "nope")); got != nil {
		t.Errorf("missing install should yield nil, got %v", got)
	}
}

func TestDefaultSaveDirsHonorsSteamPathEnv(t *testing.T) {
	steam := t.TempDir()
	remote := filepath.Join(steam, "userdata", "333", warnoAppID, "remote")
	if err := os.MkdirAll(remote, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STEAM_PATH", steam)

	dirs := DefaultSaveDirs()
	if len(dirs) != 1 || dirs[0] != remote {
		t.Errorf("DefaultSaveDirs = %v, want [%s]", dirs, remote)
	}

	t.Setenv("STEAM_PATH", filepath.Join(steam, "missing"))
	if got := DefaultSaveDirs(); got != nil {
		t.Errorf("bad STEAM_PATH should yield nil, got %v", got)
	}
}
