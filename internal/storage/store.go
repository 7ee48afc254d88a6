package storage

import (
	"fmt"
	"os"

	"github.com/Veraticus/budgetbot/internal/model"
)

// Store maps each logical entity group to exactly one JSON file under a
// data directory.
type Store struct {
	paths paths
}

// NewStore creates a store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{paths: paths{dataDir: dataDir}}
}

// DataDir returns the directory this store reads and writes.
func (s *Store) DataDir() string {
	return s.paths.dataDir
}

// LoadConfig reads the profile registry. A missing or corrupt file yields
// the default single-profile config.
func (s *Store) LoadConfig() model.AppConfig {
	config, ok := loadJSON[model.AppConfig](s.paths.config())
	if !ok {
		return model.NewAppConfig()
	}
	return config
}

// SaveConfig writes the profile registry.
func (s *Store) SaveConfig(config model.AppConfig) error {
	return saveJSON(s.paths.config(), config)
}

// categoriesFile is the on-disk shape of shared/categories.json.
type categoriesFile struct {
	Colors map[string]model.Color `json:"colors"`
	Names  []string               `json:"names"`
}

// LoadSharedData reads the three shared files independently. A missing or
// corrupt file yields that section's default without affecting the
// others.
func (s *Store) LoadSharedData() model.SharedData {
	shared := model.NewSharedData()

	if categories, ok := loadJSON[categoriesFile](s.paths.categories()); ok {
		shared.Categories = categories.Names
		shared.CategoryColors = categories.Colors
	}
	if presets, ok := loadJSON[[]model.ExpensePreset](s.paths.presets()); ok {
		shared.Presets = presets
	}
	if templates, ok := loadJSON[[]model.Template](s.paths.templates()); ok {
		shared.Templates = templates
	}

	return shared
}

// SaveSharedData writes the three shared files. A failure on one section
// is reported without rolling back sections already written.
func (s *Store) SaveSharedData(data model.SharedData) error {
	categories := categoriesFile{
		Names:  data.Categories,
		Colors: data.CategoryColors,
	}
	if err := saveJSON(s.paths.categories(), categories); err != nil {
		return err
	}
	if err := saveJSON(s.paths.presets(), data.Presets); err != nil {
		return err
	}
	return saveJSON(s.paths.templates(), data.Templates)
}

// LoadProfile reads one profile's data file. Missing or corrupt files
// yield an empty profile.
func (s *Store) LoadProfile(id string) model.ProfileData {
	profile, ok := loadJSON[model.ProfileData](s.paths.profile(id))
	if !ok {
		return model.NewProfileData()
	}
	return profile
}

// SaveProfile writes one profile's data file.
func (s *Store) SaveProfile(id string, data model.ProfileData) error {
	return saveJSON(s.paths.profile(id), data)
}

// DeleteProfileFile removes a profile's data file. A missing file is not
// an error.
func (s *Store) DeleteProfileFile(id string) error {
	err := os.Remove(s.paths.profile(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}

// DuplicateProfile deep-copies one profile's data file under a new
// identifier. The JSON round trip guarantees no shared references.
func (s *Store) DuplicateProfile(sourceID, newID string) error {
	return s.SaveProfile(newID, s.LoadProfile(sourceID))
}

// LoadLegacyBudget reads the pre-profile single-file budget. Missing or
// corrupt files yield an empty default budget.
func (s *Store) LoadLegacyBudget() model.Budget {
	budget, ok := loadJSON[model.Budget](s.paths.legacyBudget())
	if !ok {
		return model.NewBudget()
	}
	return budget
}
