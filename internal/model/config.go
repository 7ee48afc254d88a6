package model

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MainProfileID is the identifier of the profile every install starts
// with, and the profile legacy data migrates into.
const MainProfileID = "main"

// ProfileMeta describes one profile in the registry. The identifier is a
// filesystem-safe slug and is immutable once created; only the display
// name may change.
type ProfileMeta struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
}

// NewProfileMeta creates profile metadata stamped with the current time.
func NewProfileMeta(id, name string) ProfileMeta {
	return ProfileMeta{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// AppConfig is the process-wide registry of profiles plus the active
// profile pointer.
type AppConfig struct {
	ActiveProfileID string        `json:"active_profile_id"`
	Profiles        []ProfileMeta `json:"profiles"`
}

// NewAppConfig returns a config with a single active "Main Budget"
// profile.
func NewAppConfig() AppConfig {
	return AppConfig{
		ActiveProfileID: MainProfileID,
		Profiles:        []ProfileMeta{NewProfileMeta(MainProfileID, "Main Budget")},
	}
}

// ActiveProfile returns metadata for the active profile, or nil if the
// active identifier does not resolve.
func (c AppConfig) ActiveProfile() *ProfileMeta {
	return c.Profile(c.ActiveProfileID)
}

// Profile returns metadata for the given identifier, or nil. The result
// points into the registry's backing array, so pointer-receiver mutators
// may write through it.
func (c AppConfig) Profile(id string) *ProfileMeta {
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}

// AddProfile appends profile metadata to the registry.
func (c *AppConfig) AddProfile(meta ProfileMeta) {
	c.Profiles = append(c.Profiles, meta)
}

// RemoveProfile removes a profile from the registry. The active profile
// can never be removed; the return value reports whether anything was
// removed.
func (c *AppConfig) RemoveProfile(id string) bool {
	if id == c.ActiveProfileID {
		return false
	}
	before := len(c.Profiles)
	kept := c.Profiles[:0]
	for _, p := range c.Profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.Profiles = kept
	return len(c.Profiles) < before
}

// RenameProfile updates a profile's display name. Absent identifiers are
// a no-op.
func (c *AppConfig) RenameProfile(id, name string) {
	if p := c.Profile(id); p != nil {
		p.Name = name
	}
}

// GenerateProfileID derives a unique filesystem-safe identifier from a
// display name: lowercase, non-alphanumerics become hyphens, leading and
// trailing hyphens are trimmed, and a numeric suffix is appended until
// the result is unique.
func (c *AppConfig) GenerateProfileID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "profile"
	}

	id := base
	for counter := 1; c.Profile(id) != nil; counter++ {
		id = base + "-" + strconv.Itoa(counter)
	}
	return id
}
