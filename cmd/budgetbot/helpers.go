package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/session"
	"github.com/Veraticus/budgetbot/internal/storage"
)

// initSession opens the data directory and loads a session, running the
// legacy migration if one is pending.
func initSession() (*session.Session, error) {
	dataDir := viper.GetString("data.dir")
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}
	dataDir = storage.ExpandPath(dataDir)

	return session.New(storage.NewStore(dataDir))
}

// initStore opens the data directory without loading a session.
func initStore() (*storage.Store, error) {
	dataDir := viper.GetString("data.dir")
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}
	return storage.NewStore(storage.ExpandPath(dataDir)), nil
}

// parseColor accepts "r,g,b" triples or "#rrggbb" hex strings.
func parseColor(value string) (model.Color, error) {
	value = strings.TrimSpace(value)

	if hex, ok := strings.CutPrefix(value, "#"); ok {
		if len(hex) != 6 {
			return model.Color{}, fmt.Errorf("invalid hex color %q", value)
		}
		var color model.Color
		for i := 0; i < 3; i++ {
			channel, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return model.Color{}, fmt.Errorf("invalid hex color %q: %w", value, err)
			}
			color[i] = uint8(channel)
		}
		return color, nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return model.Color{}, fmt.Errorf("expected r,g,b or #rrggbb, got %q", value)
	}
	var color model.Color
	for i, part := range parts {
		channel, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return model.Color{}, fmt.Errorf("invalid color channel %q: %w", part, err)
		}
		color[i] = uint8(channel)
	}
	return color, nil
}

// resolveExpenseID matches a full or prefixed expense identifier against
// the composed view.
func resolveExpenseID(view model.Budget, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	var matches []uuid.UUID
	for _, e := range view.Expenses {
		if strings.HasPrefix(e.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no expense matches %q", arg)
	default:
		return uuid.Nil, fmt.Errorf("%q is ambiguous, matches %d expenses", arg, len(matches))
	}
}

// resolveTemplate matches a template by identifier, identifier prefix, or
// exact name.
func resolveTemplate(view model.Budget, arg string) (model.Template, error) {
	if id, err := uuid.Parse(arg); err == nil {
		for _, t := range view.Templates {
			if t.ID == id {
				return t, nil
			}
		}
		return model.Template{}, fmt.Errorf("no template with id %s", arg)
	}

	var matches []model.Template
	for _, t := range view.Templates {
		if t.Name == arg || strings.HasPrefix(t.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Template{}, fmt.Errorf("no template matches %q", arg)
	default:
		return model.Template{}, fmt.Errorf("%q is ambiguous, matches %d templates", arg, len(matches))
	}
}

// resolvePreset matches a preset by identifier, identifier prefix, or
// exact name.
func resolvePreset(view model.Budget, arg string) (model.ExpensePreset, error) {
	if id, err := uuid.Parse(arg); err == nil {
		for _, p := range view.Presets {
			if p.ID == id {
				return p, nil
			}
		}
		return model.ExpensePreset{}, fmt.Errorf("no preset with id %s", arg)
	}

	var matches []model.ExpensePreset
	for _, p := range view.Presets {
		if p.Name == arg || strings.HasPrefix(p.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.ExpensePreset{}, fmt.Errorf("no preset matches %q", arg)
	default:
		return model.ExpensePreset{}, fmt.Errorf("%q is ambiguous, matches %d presets", arg, len(matches))
	}
}
