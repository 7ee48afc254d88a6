package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig(t *testing.T) {
	c := NewAppConfig()
	assert.Equal(t, MainProfileID, c.ActiveProfileID)
	require.Len(t, c.Profiles, 1)
	assert.Equal(t, MainProfileID, c.Profiles[0].ID)
	assert.Equal(t, "Main Budget", c.Profiles[0].Name)
	assert.False(t, c.Profiles[0].CreatedAt.IsZero())
}

func TestGenerateProfileID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		existing []string
		want     string
	}{
		{name: "simple name", input: "Vacation", want: "vacation"},
		{name: "spaces become hyphens", input: "Side Hustle", want: "side-hustle"},
		{name: "punctuation becomes hyphens", input: "Mom & Dad's", want: "mom---dad-s"},
		{name: "edge hyphens are trimmed", input: "  Trip!  ", want: "trip"},
		{name: "all symbols fall back", input: "!!!", want: "profile"},
		{name: "empty falls back", input: "", want: "profile"},
		{name: "collision appends suffix", input: "Vacation", existing: []string{"vacation"}, want: "vacation-1"},
		{name: "suffix counts upward", input: "Vacation", existing: []string{"vacation", "vacation-1"}, want: "vacation-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AppConfig{}
			for _, id := range tt.existing {
				c.AddProfile(NewProfileMeta(id, id))
			}
			assert.Equal(t, tt.want, c.GenerateProfileID(tt.input))
		})
	}
}

func TestAppConfigProfiles(t *testing.T) {
	t.Run("active profile cannot be removed", func(t *testing.T) {
		c := NewAppConfig()
		assert.False(t, c.RemoveProfile(MainProfileID))
		assert.Len(t, c.Profiles, 1)
	})

	t.Run("other profiles can be removed", func(t *testing.T) {
		c := NewAppConfig()
		c.AddProfile(NewProfileMeta("vacation", "Vacation"))

		assert.True(t, c.RemoveProfile("vacation"))
		assert.Nil(t, c.Profile("vacation"))
		assert.False(t, c.RemoveProfile("vacation"))
	})

	t.Run("rename changes only the display name", func(t *testing.T) {
		c := NewAppConfig()
		c.RenameProfile(MainProfileID, "Household")

		p := c.Profile(MainProfileID)
		require.NotNil(t, p)
		assert.Equal(t, "Household", p.Name)
		assert.Equal(t, MainProfileID, p.ID)
	})

	t.Run("active profile lookup", func(t *testing.T) {
		c := NewAppConfig()
		require.NotNil(t, c.ActiveProfile())
		assert.Equal(t, MainProfileID, c.ActiveProfile().ID)

		c.ActiveProfileID = "missing"
		assert.Nil(t, c.ActiveProfile())
	})
}
