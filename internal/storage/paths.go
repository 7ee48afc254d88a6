// Package storage persists budget data as JSON files under a per-user
// data directory. Reads are best-effort and fall back to defaults; writes
// report their errors to the caller.
package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDir returns the standard per-user data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "budgetbot"), nil
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// paths resolves every file in the on-disk layout relative to one data
// directory.
type paths struct {
	dataDir string
}

func (p paths) config() string {
	return filepath.Join(p.dataDir, "config.json")
}

func (p paths) legacyBudget() string {
	return filepath.Join(p.dataDir, "budget.json")
}

func (p paths) legacyBackup() string {
	return filepath.Join(p.dataDir, "budget.json.backup")
}

func (p paths) sharedDir() string {
	return filepath.Join(p.dataDir, "shared")
}

func (p paths) categories() string {
	return filepath.Join(p.sharedDir(), "categories.json")
}

func (p paths) presets() string {
	return filepath.Join(p.sharedDir(), "presets.json")
}

func (p paths) templates() string {
	return filepath.Join(p.sharedDir(), "templates.json")
}

func (p paths) profilesDir() string {
	return filepath.Join(p.dataDir, "profiles")
}

func (p paths) profile(id string) string {
	return filepath.Join(p.profilesDir(), id+".json")
}
