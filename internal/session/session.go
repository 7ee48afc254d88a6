// Package session owns the live in-memory state: the profile registry,
// the active profile's data, and the shared category/template/preset
// pool. Every mutation follows the same pattern: mutate the in-memory
// entities, persist the affected files, recompose the derived view. The
// view always reflects the in-memory state; persistence errors are
// returned to the caller instead of being swallowed.
package session

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Veraticus/budgetbot/internal/common"
	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/storage"
)

// Session is the single owner of live budget state. Only one profile is
// resident at a time; all others exist solely as files plus a registry
// entry.
type Session struct {
	store   *storage.Store
	config  model.AppConfig
	profile model.ProfileData
	shared  model.SharedData
	view    model.Budget
}

// New loads a session from the store, running the legacy migration first
// if one is pending.
func New(store *storage.Store) (*Session, error) {
	if _, err := store.MigrateLegacyBudget(); err != nil {
		return nil, fmt.Errorf("legacy migration failed: %w", err)
	}

	config := store.LoadConfig()
	if len(config.Profiles) == 0 {
		slog.Warn("Config has no profiles, resetting to defaults")
		config = model.NewAppConfig()
	}
	if config.ActiveProfile() == nil {
		slog.Warn("Active profile missing from registry, falling back",
			"active", config.ActiveProfileID,
			"fallback", config.Profiles[0].ID)
		config.ActiveProfileID = config.Profiles[0].ID
	}

	s := &Session{
		store:   store,
		config:  config,
		shared:  store.LoadSharedData(),
		profile: store.LoadProfile(config.ActiveProfileID),
	}
	s.recompose()
	return s, nil
}

// recompose rebuilds the derived view from the current in-memory state.
func (s *Session) recompose() {
	s.view = model.Compose(&s.profile, &s.shared)
}

// Budget returns the composed view of the active profile plus shared
// data. The view is a snapshot; it must not be cached across mutations.
func (s *Session) Budget() model.Budget {
	return s.view
}

// Config returns a copy of the profile registry.
func (s *Session) Config() model.AppConfig {
	config := s.config
	config.Profiles = slices.Clone(s.config.Profiles)
	return config
}

// ActiveProfileID returns the identifier of the resident profile.
func (s *Session) ActiveProfileID() string {
	return s.config.ActiveProfileID
}

func (s *Session) saveProfile() error {
	err := s.store.SaveProfile(s.config.ActiveProfileID, s.profile)
	s.recompose()
	return err
}

func (s *Session) saveShared() error {
	err := s.store.SaveSharedData(s.shared)
	s.recompose()
	return err
}

// AddExpense appends an expense to the active profile.
func (s *Session) AddExpense(expense model.Expense) error {
	s.profile.AddExpense(expense)
	return s.saveProfile()
}

// RemoveExpense removes an expense by identifier. Absent identifiers are
// a no-op, not an error.
func (s *Session) RemoveExpense(id uuid.UUID) error {
	s.profile.RemoveExpense(id)
	return s.saveProfile()
}

// ToggleExpense flips an expense's active flag in place.
func (s *Session) ToggleExpense(id uuid.UUID) error {
	s.profile.ToggleExpense(id)
	return s.saveProfile()
}

// SetIncome overwrites the active profile's income. Validation of the
// amount happens at the form boundary, not here.
func (s *Session) SetIncome(amount float64) error {
	s.profile.Income = amount
	return s.saveProfile()
}

// AddCategory adds a shared category. Empty or duplicate names are
// silently ignored.
func (s *Session) AddCategory(name string, color model.Color) error {
	s.shared.AddCategory(name, color)
	return s.saveShared()
}

// RemoveCategory deletes a shared category. Expenses referencing the name
// keep it; their display falls back to gray.
func (s *Session) RemoveCategory(name string) error {
	s.shared.RemoveCategory(name)
	return s.saveShared()
}

// SetCategoryColor recolors an existing category.
func (s *Session) SetCategoryColor(name string, color model.Color) error {
	s.shared.SetCategoryColor(name, color)
	return s.saveShared()
}

// SaveTemplate snapshots the active profile's expenses, with their
// existing identifiers, into a new shared template.
func (s *Session) SaveTemplate(name string) error {
	s.shared.AddTemplate(model.NewTemplate(name, slices.Clone(s.profile.Expenses)))
	return s.saveShared()
}

// LoadTemplate replaces the active profile's expenses wholesale with
// freshly-identified copies of the template's expenses. Missing templates
// are a no-op.
func (s *Session) LoadTemplate(id uuid.UUID) error {
	tmpl := s.shared.Template(id)
	if tmpl == nil {
		return nil
	}
	s.profile.Expenses = tmpl.Instantiate()
	return s.saveProfile()
}

// AppendTemplate adds freshly-identified copies of the template's
// expenses without removing existing ones. Missing templates are a no-op.
func (s *Session) AppendTemplate(id uuid.UUID) error {
	tmpl := s.shared.Template(id)
	if tmpl == nil {
		return nil
	}
	s.profile.Expenses = append(s.profile.Expenses, tmpl.Instantiate()...)
	return s.saveProfile()
}

// DeleteTemplate removes a shared template.
func (s *Session) DeleteTemplate(id uuid.UUID) error {
	s.shared.DeleteTemplate(id)
	return s.saveShared()
}

// RenameTemplate updates a template's display name.
func (s *Session) RenameTemplate(id uuid.UUID, name string) error {
	s.shared.RenameTemplate(id, name)
	return s.saveShared()
}

// UpdateTemplateExpenses replaces a template's stored expense snapshots.
func (s *Session) UpdateTemplateExpenses(id uuid.UUID, expenses []model.Expense) error {
	s.shared.UpdateTemplateExpenses(id, expenses)
	return s.saveShared()
}

// AddPreset appends a shared preset.
func (s *Session) AddPreset(preset model.ExpensePreset) error {
	s.shared.AddPreset(preset)
	return s.saveShared()
}

// RemovePreset removes a shared preset.
func (s *Session) RemovePreset(id uuid.UUID) error {
	s.shared.RemovePreset(id)
	return s.saveShared()
}

// UsePreset creates an expense from a preset, dated today, and appends it
// to the active profile. Missing presets are a no-op.
func (s *Session) UsePreset(id uuid.UUID) error {
	preset := s.shared.Preset(id)
	if preset == nil {
		return nil
	}
	s.profile.AddExpense(preset.Instantiate())
	return s.saveProfile()
}

// PresetFromExpense promotes an existing expense into a named preset.
// Missing expenses are a no-op.
func (s *Session) PresetFromExpense(expenseID uuid.UUID, name string) error {
	expense := s.profile.Expense(expenseID)
	if expense == nil {
		return nil
	}
	s.shared.AddPreset(model.NewExpensePreset(name, expense.Amount, expense.Category, expense.Description))
	return s.saveShared()
}

// CreateProfile registers a new empty profile under a slug derived from
// the name. The session does not switch to it.
func (s *Session) CreateProfile(name string) (model.ProfileMeta, error) {
	meta := model.NewProfileMeta(s.config.GenerateProfileID(name), name)
	s.config.AddProfile(meta)

	if err := s.store.SaveConfig(s.config); err != nil {
		return meta, err
	}
	return meta, s.store.SaveProfile(meta.ID, model.NewProfileData())
}

// DuplicateProfile registers a new profile as a deep copy of an existing
// profile's data file.
func (s *Session) DuplicateProfile(sourceID, name string) (model.ProfileMeta, error) {
	if s.config.Profile(sourceID) == nil {
		return model.ProfileMeta{}, fmt.Errorf("%w: %s", common.ErrProfileNotFound, sourceID)
	}

	// The resident profile may have edits the file does not, so flush it
	// before copying from disk.
	if sourceID == s.config.ActiveProfileID {
		if err := s.saveProfile(); err != nil {
			return model.ProfileMeta{}, err
		}
	}

	meta := model.NewProfileMeta(s.config.GenerateProfileID(name), name)
	s.config.AddProfile(meta)

	if err := s.store.SaveConfig(s.config); err != nil {
		return meta, err
	}
	return meta, s.store.DuplicateProfile(sourceID, meta.ID)
}

// RenameProfile updates a profile's display name; the identifier never
// changes.
func (s *Session) RenameProfile(id, name string) error {
	if s.config.Profile(id) == nil {
		return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
	}
	s.config.RenameProfile(id, name)
	return s.store.SaveConfig(s.config)
}

// DeleteProfile removes a profile and its data file. The active profile
// can never be deleted out from under itself.
func (s *Session) DeleteProfile(id string) error {
	if id == s.config.ActiveProfileID {
		return common.ErrActiveProfile
	}
	if s.config.Profile(id) == nil {
		return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
	}

	s.config.RemoveProfile(id)
	if err := s.store.SaveConfig(s.config); err != nil {
		return err
	}
	return s.store.DeleteProfileFile(id)
}

// SwitchProfile makes another profile resident. The current profile is
// flushed to disk first so unsaved in-memory edits survive the switch.
func (s *Session) SwitchProfile(id string) error {
	if s.config.Profile(id) == nil {
		return fmt.Errorf("%w: %s", common.ErrProfileNotFound, id)
	}
	if id == s.config.ActiveProfileID {
		return nil
	}

	if err := s.store.SaveProfile(s.config.ActiveProfileID, s.profile); err != nil {
		return fmt.Errorf("failed to flush profile before switch: %w", err)
	}

	s.profile = s.store.LoadProfile(id)
	s.config.ActiveProfileID = id
	err := s.store.SaveConfig(s.config)
	s.recompose()

	slog.Info("Switched profile", "profile", id)
	return err
}

// CycleNextProfile advances to the next profile in registry order,
// wrapping around. With one profile or fewer it is a no-op.
func (s *Session) CycleNextProfile() error {
	if len(s.config.Profiles) <= 1 {
		return nil
	}

	for i, p := range s.config.Profiles {
		if p.ID == s.config.ActiveProfileID {
			next := s.config.Profiles[(i+1)%len(s.config.Profiles)]
			return s.SwitchProfile(next.ID)
		}
	}
	return s.SwitchProfile(s.config.Profiles[0].ID)
}
