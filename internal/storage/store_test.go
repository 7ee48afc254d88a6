package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budgetbot/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestFreshInstall(t *testing.T) {
	store := newTestStore(t)

	t.Run("config defaults to a single main profile", func(t *testing.T) {
		config := store.LoadConfig()
		assert.Equal(t, model.MainProfileID, config.ActiveProfileID)
		require.Len(t, config.Profiles, 1)
		assert.Equal(t, model.MainProfileID, config.Profiles[0].ID)
		assert.Equal(t, "Main Budget", config.Profiles[0].Name)
	})

	t.Run("profile defaults to empty", func(t *testing.T) {
		profile := store.LoadProfile(model.MainProfileID)
		assert.Equal(t, 0.0, profile.Income)
		assert.Empty(t, profile.Expenses)
	})

	t.Run("shared data defaults to built-in categories", func(t *testing.T) {
		shared := store.LoadSharedData()
		assert.Len(t, shared.Categories, len(model.DefaultCategories))
		assert.Empty(t, shared.Presets)
		assert.Empty(t, shared.Templates)
	})
}

func TestConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)

	config := model.NewAppConfig()
	config.AddProfile(model.NewProfileMeta("vacation", "Vacation"))
	require.NoError(t, store.SaveConfig(config))

	loaded := store.LoadConfig()
	assert.Equal(t, config.ActiveProfileID, loaded.ActiveProfileID)
	require.Len(t, loaded.Profiles, 2)
	assert.Equal(t, "vacation", loaded.Profiles[1].ID)
	assert.Equal(t, "Vacation", loaded.Profiles[1].Name)
	assert.WithinDuration(t, config.Profiles[1].CreatedAt, loaded.Profiles[1].CreatedAt, time.Second)
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)
	date := model.NewDate(2024, time.March, 3)

	profile := model.ProfileData{
		Income: 4200,
		Expenses: []model.Expense{
			model.NewExpense(1500, "Housing & Utilities", "rent", date),
			model.NewExpense(89.99, "Entertainment", "games", date),
		},
	}
	profile.Expenses[1].Active = false

	require.NoError(t, store.SaveProfile("main", profile))

	loaded := store.LoadProfile("main")
	assert.Equal(t, profile.Income, loaded.Income)
	require.Len(t, loaded.Expenses, 2)
	assert.Equal(t, profile.Expenses[0], loaded.Expenses[0])
	assert.Equal(t, profile.Expenses[1], loaded.Expenses[1])
}

func TestSharedDataRoundTrip(t *testing.T) {
	store := newTestStore(t)
	date := model.NewDate(2024, time.March, 3)

	shared := model.NewSharedData()
	shared.AddCategory("Pets", model.Color{10, 20, 30})
	shared.AddPreset(model.NewExpensePreset("Vet", 80, "Pets", "checkup").WithDay(5))
	shared.AddTemplate(model.NewTemplate("bills", []model.Expense{
		model.NewExpense(55, "Housing & Utilities", "water", date),
	}))

	require.NoError(t, store.SaveSharedData(shared))

	loaded := store.LoadSharedData()
	assert.Equal(t, shared.Categories, loaded.Categories)
	assert.Equal(t, shared.CategoryColors, loaded.CategoryColors)
	assert.Equal(t, shared.Presets, loaded.Presets)
	assert.Equal(t, shared.Templates, loaded.Templates)
}

func TestSharedDataPartialCorruption(t *testing.T) {
	store := newTestStore(t)

	shared := model.NewSharedData()
	shared.AddTemplate(model.NewTemplate("bills", nil))
	shared.AddPreset(model.NewExpensePreset("Coffee", 4, "Food & Groceries", ""))
	require.NoError(t, store.SaveSharedData(shared))

	// Corrupt only the presets file; the other sections must survive.
	presetsPath := filepath.Join(store.DataDir(), "shared", "presets.json")
	require.NoError(t, os.WriteFile(presetsPath, []byte("{not json"), 0o600))

	loaded := store.LoadSharedData()
	assert.Empty(t, loaded.Presets)
	assert.Equal(t, shared.Categories, loaded.Categories)
	require.Len(t, loaded.Templates, 1)
	assert.Equal(t, "bills", loaded.Templates[0].Name)
}

func TestDuplicateProfile(t *testing.T) {
	store := newTestStore(t)
	date := model.NewDate(2024, time.June, 10)

	source := model.ProfileData{
		Income:   1000,
		Expenses: []model.Expense{model.NewExpense(25, "Other", "", date)},
	}
	require.NoError(t, store.SaveProfile("main", source))
	require.NoError(t, store.DuplicateProfile("main", "copy"))

	duplicate := store.LoadProfile("copy")
	assert.Equal(t, source.Income, duplicate.Income)
	assert.Equal(t, source.Expenses, duplicate.Expenses)

	// Mutating the duplicate on disk must not touch the source.
	duplicate.Income = 2000
	require.NoError(t, store.SaveProfile("copy", duplicate))
	assert.Equal(t, 1000.0, store.LoadProfile("main").Income)
}

func TestDeleteProfileFile(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveProfile("gone", model.NewProfileData()))
	require.NoError(t, store.DeleteProfileFile("gone"))
	assert.NoFileExists(t, filepath.Join(store.DataDir(), "profiles", "gone.json"))

	// Deleting a file that never existed is fine.
	require.NoError(t, store.DeleteProfileFile("never-existed"))
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "data")
	store := NewStore(dir)

	require.NoError(t, store.SaveConfig(model.NewAppConfig()))
	assert.FileExists(t, filepath.Join(dir, "config.json"))
}

func TestCorruptConfigFallsBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(store.DataDir(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(store.DataDir(), "config.json"), []byte("<<<"), 0o600))

	config := store.LoadConfig()
	assert.Equal(t, model.MainProfileID, config.ActiveProfileID)
	require.Len(t, config.Profiles, 1)
}
