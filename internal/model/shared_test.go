package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedDataCategories(t *testing.T) {
	t.Run("defaults are seeded", func(t *testing.T) {
		s := NewSharedData()
		assert.Len(t, s.Categories, len(DefaultCategories))
		assert.Equal(t, Color{34, 197, 94}, s.CategoryColor("Food & Groceries"))
	})

	t.Run("add trims whitespace", func(t *testing.T) {
		s := NewSharedData()
		s.AddCategory("  Pets  ", Color{10, 20, 30})
		assert.True(t, s.HasCategory("Pets"))
		assert.Equal(t, Color{10, 20, 30}, s.CategoryColor("Pets"))
	})

	t.Run("empty and duplicate names are ignored", func(t *testing.T) {
		s := NewSharedData()
		before := len(s.Categories)

		s.AddCategory("   ", Color{1, 2, 3})
		s.AddCategory("Shopping", Color{1, 2, 3})
		assert.Len(t, s.Categories, before)
		// Duplicate add must not overwrite the existing color either.
		assert.Equal(t, Color{20, 184, 166}, s.CategoryColor("Shopping"))
	})

	t.Run("removal drops name and color", func(t *testing.T) {
		s := NewSharedData()
		s.RemoveCategory("Healthcare")
		assert.False(t, s.HasCategory("Healthcare"))
		assert.Equal(t, ColorGray, s.CategoryColor("Healthcare"))
	})

	t.Run("unknown categories fall back to gray", func(t *testing.T) {
		s := NewSharedData()
		assert.Equal(t, ColorGray, s.CategoryColor("never-created"))
	})

	t.Run("recoloring unknown categories is ignored", func(t *testing.T) {
		s := NewSharedData()
		s.SetCategoryColor("nope", Color{9, 9, 9})
		assert.Equal(t, ColorGray, s.CategoryColor("nope"))

		s.SetCategoryColor("Shopping", Color{9, 9, 9})
		assert.Equal(t, Color{9, 9, 9}, s.CategoryColor("Shopping"))
	})
}

func TestSharedDataTemplates(t *testing.T) {
	date := NewDate(2024, time.June, 1)
	s := NewSharedData()
	tmpl := NewTemplate("bills", []Expense{NewExpense(10, "Other", "", date)})
	s.AddTemplate(tmpl)

	t.Run("lookup by identifier", func(t *testing.T) {
		found := s.Template(tmpl.ID)
		require.NotNil(t, found)
		assert.Equal(t, "bills", found.Name)
		assert.Nil(t, s.Template(uuid.New()))
	})

	t.Run("rename", func(t *testing.T) {
		s.RenameTemplate(tmpl.ID, "monthly bills")
		assert.Equal(t, "monthly bills", s.Template(tmpl.ID).Name)

		s.RenameTemplate(uuid.New(), "ghost") // no-op
		assert.Len(t, s.Templates, 1)
	})

	t.Run("update expenses", func(t *testing.T) {
		replacement := []Expense{NewExpense(99, "Shopping", "", date)}
		s.UpdateTemplateExpenses(tmpl.ID, replacement)
		assert.Equal(t, replacement, s.Template(tmpl.ID).Expenses)
	})

	t.Run("delete", func(t *testing.T) {
		s.DeleteTemplate(tmpl.ID)
		assert.Empty(t, s.Templates)
	})
}

func TestSharedDataPresets(t *testing.T) {
	s := NewSharedData()
	p := NewExpensePreset("Netflix", 15.99, "Entertainment", "subscription")
	s.AddPreset(p)

	found := s.Preset(p.ID)
	require.NotNil(t, found)
	assert.Equal(t, "Netflix", found.Name)
	assert.Nil(t, s.Preset(uuid.New()))

	s.RemovePreset(p.ID)
	assert.Empty(t, s.Presets)
}
