package storage

import (
	"log/slog"
	"os"

	"github.com/Veraticus/budgetbot/internal/model"
)

// NeedsMigration reports whether the legacy single-file budget.json is
// present without the new config.json. Running migration in any other
// state is a no-op, which makes the upgrade idempotent.
func (s *Store) NeedsMigration() bool {
	if _, err := os.Stat(s.paths.legacyBudget()); err != nil {
		return false
	}
	if _, err := os.Stat(s.paths.config()); err == nil {
		return false
	}
	return true
}

// MigrateLegacyBudget performs the one-time split of the legacy
// budget.json into the shared files, a "main" profile, and a default
// config. The legacy file is renamed to budget.json.backup only after
// every new file has been written, so a failure at any step leaves the
// original in place and migration retries on the next launch. The return
// value reports whether a migration actually ran.
func (s *Store) MigrateLegacyBudget() (bool, error) {
	if !s.NeedsMigration() {
		return false, nil
	}

	slog.Info("Migrating legacy budget to profile layout",
		"legacy", s.paths.legacyBudget())

	legacy := s.LoadLegacyBudget()

	shared := model.SharedData{
		Categories:     legacy.Categories,
		CategoryColors: legacy.CategoryColors,
		Templates:      legacy.Templates,
		Presets:        legacy.Presets,
	}
	if err := s.SaveSharedData(shared); err != nil {
		return false, err
	}

	profile := model.ProfileData{
		Income:   legacy.Income,
		Expenses: legacy.Expenses,
	}
	if err := s.SaveProfile(model.MainProfileID, profile); err != nil {
		return false, err
	}

	if err := s.SaveConfig(model.NewAppConfig()); err != nil {
		return false, err
	}

	// Best effort: the new files already exist, so a failed rename only
	// leaves the old file in place rather than losing data.
	if err := os.Rename(s.paths.legacyBudget(), s.paths.legacyBackup()); err != nil {
		slog.Warn("Failed to rename legacy budget file",
			"path", s.paths.legacyBudget(),
			"error", err)
	}

	slog.Info("Legacy budget migrated",
		"profile", model.MainProfileID,
		"expenses", len(profile.Expenses),
		"templates", len(shared.Templates),
		"presets", len(shared.Presets))

	return true, nil
}
