package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Veraticus/budgetbot/internal/model"
)

// Intent is one user action emitted by a view component. The set is
// closed: views describe what should happen, and Apply is the single
// place that turns an intent into a mutation.
type Intent interface {
	isIntent()
}

// AddExpenseIntent adds an expense to the active profile.
type AddExpenseIntent struct {
	Expense model.Expense
}

// RemoveExpenseIntent removes an expense by identifier.
type RemoveExpenseIntent struct {
	ID uuid.UUID
}

// ToggleExpenseIntent flips an expense's active flag.
type ToggleExpenseIntent struct {
	ID uuid.UUID
}

// SetIncomeIntent overwrites the active profile's income.
type SetIncomeIntent struct {
	Amount float64
}

// AddCategoryIntent adds a shared category with a color.
type AddCategoryIntent struct {
	Name  string
	Color model.Color
}

// RemoveCategoryIntent deletes a shared category.
type RemoveCategoryIntent struct {
	Name string
}

// RecolorCategoryIntent changes an existing category's color.
type RecolorCategoryIntent struct {
	Name  string
	Color model.Color
}

// SaveTemplateIntent snapshots the active profile's expenses into a new
// template.
type SaveTemplateIntent struct {
	Name string
}

// LoadTemplateIntent replaces the active profile's expenses with copies
// of a template's expenses.
type LoadTemplateIntent struct {
	ID uuid.UUID
}

// AppendTemplateIntent adds copies of a template's expenses to the active
// profile.
type AppendTemplateIntent struct {
	ID uuid.UUID
}

// DeleteTemplateIntent removes a template.
type DeleteTemplateIntent struct {
	ID uuid.UUID
}

// RenameTemplateIntent updates a template's display name.
type RenameTemplateIntent struct {
	Name string
	ID   uuid.UUID
}

// UpdateTemplateIntent replaces a template's stored expenses.
type UpdateTemplateIntent struct {
	Expenses []model.Expense
	ID       uuid.UUID
}

// AddPresetIntent adds a shared preset.
type AddPresetIntent struct {
	Preset model.ExpensePreset
}

// RemovePresetIntent removes a shared preset.
type RemovePresetIntent struct {
	ID uuid.UUID
}

// UsePresetIntent instantiates a preset as a new expense dated today.
type UsePresetIntent struct {
	ID uuid.UUID
}

// PresetFromExpenseIntent promotes an existing expense into a preset.
type PresetFromExpenseIntent struct {
	Name      string
	ExpenseID uuid.UUID
}

// CreateProfileIntent registers a new empty profile.
type CreateProfileIntent struct {
	Name string
}

// DuplicateProfileIntent registers a new profile copied from an existing
// one.
type DuplicateProfileIntent struct {
	SourceID string
	Name     string
}

// RenameProfileIntent updates a profile's display name.
type RenameProfileIntent struct {
	ID   string
	Name string
}

// DeleteProfileIntent removes a profile and its data file.
type DeleteProfileIntent struct {
	ID string
}

// SwitchProfileIntent makes another profile resident.
type SwitchProfileIntent struct {
	ID string
}

// CycleProfileIntent advances to the next profile in registry order.
type CycleProfileIntent struct{}

func (AddExpenseIntent) isIntent()        {}
func (RemoveExpenseIntent) isIntent()     {}
func (ToggleExpenseIntent) isIntent()     {}
func (SetIncomeIntent) isIntent()         {}
func (AddCategoryIntent) isIntent()       {}
func (RemoveCategoryIntent) isIntent()    {}
func (RecolorCategoryIntent) isIntent()   {}
func (SaveTemplateIntent) isIntent()      {}
func (LoadTemplateIntent) isIntent()      {}
func (AppendTemplateIntent) isIntent()    {}
func (DeleteTemplateIntent) isIntent()    {}
func (RenameTemplateIntent) isIntent()    {}
func (UpdateTemplateIntent) isIntent()    {}
func (AddPresetIntent) isIntent()         {}
func (RemovePresetIntent) isIntent()      {}
func (UsePresetIntent) isIntent()         {}
func (PresetFromExpenseIntent) isIntent() {}
func (CreateProfileIntent) isIntent()     {}
func (DuplicateProfileIntent) isIntent()  {}
func (RenameProfileIntent) isIntent()     {}
func (DeleteProfileIntent) isIntent()     {}
func (SwitchProfileIntent) isIntent()     {}
func (CycleProfileIntent) isIntent()      {}

// Apply dispatches one intent to its mutation. This is the only consumer
// of intents.
func (s *Session) Apply(intent Intent) error {
	switch i := intent.(type) {
	case AddExpenseIntent:
		return s.AddExpense(i.Expense)
	case RemoveExpenseIntent:
		return s.RemoveExpense(i.ID)
	case ToggleExpenseIntent:
		return s.ToggleExpense(i.ID)
	case SetIncomeIntent:
		return s.SetIncome(i.Amount)
	case AddCategoryIntent:
		return s.AddCategory(i.Name, i.Color)
	case RemoveCategoryIntent:
		return s.RemoveCategory(i.Name)
	case RecolorCategoryIntent:
		return s.SetCategoryColor(i.Name, i.Color)
	case SaveTemplateIntent:
		return s.SaveTemplate(i.Name)
	case LoadTemplateIntent:
		return s.LoadTemplate(i.ID)
	case AppendTemplateIntent:
		return s.AppendTemplate(i.ID)
	case DeleteTemplateIntent:
		return s.DeleteTemplate(i.ID)
	case RenameTemplateIntent:
		return s.RenameTemplate(i.ID, i.Name)
	case UpdateTemplateIntent:
		return s.UpdateTemplateExpenses(i.ID, i.Expenses)
	case AddPresetIntent:
		return s.AddPreset(i.Preset)
	case RemovePresetIntent:
		return s.RemovePreset(i.ID)
	case UsePresetIntent:
		return s.UsePreset(i.ID)
	case PresetFromExpenseIntent:
		return s.PresetFromExpense(i.ExpenseID, i.Name)
	case CreateProfileIntent:
		_, err := s.CreateProfile(i.Name)
		return err
	case DuplicateProfileIntent:
		_, err := s.DuplicateProfile(i.SourceID, i.Name)
		return err
	case RenameProfileIntent:
		return s.RenameProfile(i.ID, i.Name)
	case DeleteProfileIntent:
		return s.DeleteProfile(i.ID)
	case SwitchProfileIntent:
		return s.SwitchProfile(i.ID)
	case CycleProfileIntent:
		return s.CycleNextProfile()
	default:
		return fmt.Errorf("unhandled intent type %T", intent)
	}
}
