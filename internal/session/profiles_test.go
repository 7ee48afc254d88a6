package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budgetbot/internal/common"
	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/storage"
)

func TestCreateProfile(t *testing.T) {
	s, store := newTestSession(t)

	meta, err := s.CreateProfile("Vacation")
	require.NoError(t, err)
	assert.Equal(t, "vacation", meta.ID)
	assert.Equal(t, "Vacation", meta.Name)

	t.Run("registry grows and the session stays put", func(t *testing.T) {
		config := store.LoadConfig()
		assert.Len(t, config.Profiles, 2)
		assert.Equal(t, model.MainProfileID, config.ActiveProfileID)
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})

	t.Run("an empty data file is written", func(t *testing.T) {
		assert.FileExists(t, filepath.Join(store.DataDir(), "profiles", "vacation.json"))
		profile := store.LoadProfile("vacation")
		assert.Equal(t, 0.0, profile.Income)
		assert.Empty(t, profile.Expenses)
	})

	t.Run("a name collision gets a suffix", func(t *testing.T) {
		second, err := s.CreateProfile("Vacation")
		require.NoError(t, err)
		assert.Equal(t, "vacation-1", second.ID)
	})
}

func TestDuplicateProfile(t *testing.T) {
	s, store := newTestSession(t)
	require.NoError(t, s.SetIncome(1234))
	require.NoError(t, s.AddExpense(model.NewExpense(10, "Other", "", model.NewDate(2024, time.May, 5))))

	meta, err := s.DuplicateProfile(model.MainProfileID, "Main Copy")
	require.NoError(t, err)
	assert.Equal(t, "main-copy", meta.ID)

	duplicate := store.LoadProfile("main-copy")
	assert.Equal(t, 1234.0, duplicate.Income)
	assert.Len(t, duplicate.Expenses, 1)

	t.Run("unknown source fails", func(t *testing.T) {
		_, err := s.DuplicateProfile("ghost", "Ghost Copy")
		assert.True(t, errors.Is(err, common.ErrProfileNotFound))
	})
}

func TestDeleteProfile(t *testing.T) {
	s, store := newTestSession(t)
	meta, err := s.CreateProfile("Disposable")
	require.NoError(t, err)

	t.Run("the active profile is protected", func(t *testing.T) {
		err := s.DeleteProfile(model.MainProfileID)
		assert.True(t, errors.Is(err, common.ErrActiveProfile))

		// The registry keeps both entries and main stays active. A fresh
		// install has no profiles/main.json; defaults stay in memory
		// until the first mutation persists them.
		config := store.LoadConfig()
		assert.Len(t, config.Profiles, 2)
		assert.Equal(t, model.MainProfileID, config.ActiveProfileID)
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})

	t.Run("other profiles are removed with their files", func(t *testing.T) {
		require.NoError(t, s.DeleteProfile(meta.ID))
		assert.Len(t, store.LoadConfig().Profiles, 1)
		assert.NoFileExists(t, filepath.Join(store.DataDir(), "profiles", "disposable.json"))
	})

	t.Run("deleting twice fails with not found", func(t *testing.T) {
		err := s.DeleteProfile(meta.ID)
		assert.True(t, errors.Is(err, common.ErrProfileNotFound))
	})
}

func TestRenameProfile(t *testing.T) {
	s, store := newTestSession(t)

	require.NoError(t, s.RenameProfile(model.MainProfileID, "Household"))
	p := store.LoadConfig().Profile(model.MainProfileID)
	require.NotNil(t, p)
	assert.Equal(t, "Household", p.Name)
	assert.Equal(t, model.MainProfileID, p.ID)

	err := s.RenameProfile("ghost", "Ghost")
	assert.True(t, errors.Is(err, common.ErrProfileNotFound))
}

func TestSwitchProfile(t *testing.T) {
	t.Run("flushes in-memory edits before switching", func(t *testing.T) {
		s, store := newTestSession(t)
		_, err := s.CreateProfile("Second")
		require.NoError(t, err)

		// Divergence between memory and disk cannot happen through the
		// public mutations, which all persist; simulate an interrupted
		// save by editing the resident profile directly.
		unsaved := model.NewExpense(77, "Other", "unsaved", model.Today())
		s.profile.AddExpense(unsaved)

		require.NoError(t, s.SwitchProfile("second"))

		flushed := store.LoadProfile(model.MainProfileID)
		require.Len(t, flushed.Expenses, 1)
		assert.Equal(t, unsaved.ID, flushed.Expenses[0].ID)
	})

	t.Run("updates the persisted active pointer", func(t *testing.T) {
		s, store := newTestSession(t)
		_, err := s.CreateProfile("Second")
		require.NoError(t, err)

		require.NoError(t, s.SwitchProfile("second"))
		assert.Equal(t, "second", s.ActiveProfileID())
		assert.Equal(t, "second", store.LoadConfig().ActiveProfileID)
	})

	t.Run("unknown target fails without switching", func(t *testing.T) {
		s, _ := newTestSession(t)
		err := s.SwitchProfile("nowhere")
		assert.True(t, errors.Is(err, common.ErrProfileNotFound))
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})

	t.Run("switching to the active profile is a no-op", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.SwitchProfile(model.MainProfileID))
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})
}

func TestCycleNextProfile(t *testing.T) {
	t.Run("single profile is a no-op", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.CycleNextProfile())
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})

	t.Run("advances in registry order and wraps", func(t *testing.T) {
		s, _ := newTestSession(t)
		_, err := s.CreateProfile("Beta")
		require.NoError(t, err)
		_, err = s.CreateProfile("Gamma")
		require.NoError(t, err)

		require.NoError(t, s.CycleNextProfile())
		assert.Equal(t, "beta", s.ActiveProfileID())

		require.NoError(t, s.CycleNextProfile())
		assert.Equal(t, "gamma", s.ActiveProfileID())

		require.NoError(t, s.CycleNextProfile())
		assert.Equal(t, model.MainProfileID, s.ActiveProfileID())
	})
}

func TestSessionStateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)

	s, err := New(store)
	require.NoError(t, err)
	require.NoError(t, s.SetIncome(900))
	_, err = s.CreateProfile("Other Half")
	require.NoError(t, err)
	require.NoError(t, s.SwitchProfile("other-half"))
	require.NoError(t, s.SetIncome(100))

	restarted, err := New(storage.NewStore(dir))
	require.NoError(t, err)
	assert.Equal(t, "other-half", restarted.ActiveProfileID())
	assert.Equal(t, 100.0, restarted.Budget().Income)

	require.NoError(t, restarted.SwitchProfile(model.MainProfileID))
	assert.Equal(t, 900.0, restarted.Budget().Income)
}
