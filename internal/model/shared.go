package model

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultCategory pairs a built-in category name with its color.
type DefaultCategory struct {
	Name  string
	Color Color
}

// DefaultCategories are the categories seeded into a fresh install.
var DefaultCategories = []DefaultCategory{
	{Name: "Food & Groceries", Color: Color{34, 197, 94}},
	{Name: "Transportation", Color: Color{59, 130, 246}},
	{Name: "Housing & Utilities", Color: Color{168, 85, 247}},
	{Name: "Entertainment", Color: Color{249, 115, 22}},
	{Name: "Healthcare", Color: Color{236, 72, 153}},
	{Name: "Shopping", Color: Color{20, 184, 166}},
	{Name: "Other", Color: Color{156, 163, 175}},
}

func defaultCategoryNames() []string {
	names := make([]string, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		names = append(names, c.Name)
	}
	return names
}

func defaultCategoryColors() map[string]Color {
	colors := make(map[string]Color, len(DefaultCategories))
	for _, c := range DefaultCategories {
		colors[c.Name] = c.Color
	}
	return colors
}

// SharedData holds the categories, colors, templates and presets common
// to every profile. Exactly one instance exists.
type SharedData struct {
	CategoryColors map[string]Color `json:"category_colors"`
	Categories     []string         `json:"categories"`
	Templates      []Template       `json:"templates"`
	Presets        []ExpensePreset  `json:"presets"`
}

// NewSharedData returns shared data seeded with the default categories.
func NewSharedData() SharedData {
	return SharedData{
		Categories:     defaultCategoryNames(),
		CategoryColors: defaultCategoryColors(),
	}
}

// AddCategory adds a category with its color. The name is trimmed of
// whitespace; empty or duplicate (exact match) names are silently ignored.
func (s *SharedData) AddCategory(name string, color Color) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || s.HasCategory(trimmed) {
		return
	}
	if s.CategoryColors == nil {
		s.CategoryColors = make(map[string]Color)
	}
	s.Categories = append(s.Categories, trimmed)
	s.CategoryColors[trimmed] = color
}

// RemoveCategory deletes a category and its color entry. Expenses keep
// referencing the name; display falls back to gray.
func (s *SharedData) RemoveCategory(name string) {
	kept := s.Categories[:0]
	for _, c := range s.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.Categories = kept
	delete(s.CategoryColors, name)
}

// HasCategory reports whether the exact category name exists.
func (s SharedData) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryColor returns the color for a category, or gray if the category
// has no color entry.
func (s SharedData) CategoryColor(name string) Color {
	if color, ok := s.CategoryColors[name]; ok {
		return color
	}
	return ColorGray
}

// SetCategoryColor updates the color of an existing category. Unknown
// categories are ignored.
func (s *SharedData) SetCategoryColor(name string, color Color) {
	if !s.HasCategory(name) {
		return
	}
	if s.CategoryColors == nil {
		s.CategoryColors = make(map[string]Color)
	}
	s.CategoryColors[name] = color
}

// AddTemplate appends a template.
func (s *SharedData) AddTemplate(template Template) {
	s.Templates = append(s.Templates, template)
}

// Template returns the template with the given identifier, or nil.
func (s *SharedData) Template(id uuid.UUID) *Template {
	for i := range s.Templates {
		if s.Templates[i].ID == id {
			return &s.Templates[i]
		}
	}
	return nil
}

// DeleteTemplate removes the template with the given identifier.
func (s *SharedData) DeleteTemplate(id uuid.UUID) {
	kept := s.Templates[:0]
	for _, t := range s.Templates {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Templates = kept
}

// RenameTemplate updates a template's display name. Absent identifiers
// are a no-op.
func (s *SharedData) RenameTemplate(id uuid.UUID, name string) {
	if t := s.Template(id); t != nil {
		t.Name = name
	}
}

// UpdateTemplateExpenses replaces a template's stored expense snapshots.
// Absent identifiers are a no-op.
func (s *SharedData) UpdateTemplateExpenses(id uuid.UUID, expenses []Expense) {
	if t := s.Template(id); t != nil {
		t.Expenses = expenses
	}
}

// AddPreset appends a preset.
func (s *SharedData) AddPreset(preset ExpensePreset) {
	s.Presets = append(s.Presets, preset)
}

// Preset returns the preset with the given identifier, or nil.
func (s *SharedData) Preset(id uuid.UUID) *ExpensePreset {
	for i := range s.Presets {
		if s.Presets[i].ID == id {
			return &s.Presets[i]
		}
	}
	return nil
}

// RemovePreset removes the preset with the given identifier.
func (s *SharedData) RemovePreset(id uuid.UUID) {
	kept := s.Presets[:0]
	for _, p := range s.Presets {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.Presets = kept
}
