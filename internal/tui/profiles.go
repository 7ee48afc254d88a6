// Package tui provides the interactive terminal views. Views never
// mutate state themselves; they read entity snapshots and emit intents
// for the session layer to apply.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/budgetbot/internal/cli"
	"github.com/Veraticus/budgetbot/internal/model"
	"github.com/Veraticus/budgetbot/internal/session"
)

// profileItem adapts a ProfileMeta for the list widget.
type profileItem struct {
	meta   model.ProfileMeta
	active bool
}

func (i profileItem) Title() string {
	if i.active {
		return i.meta.Name + " " + cli.SuccessStyle.Render("(active)")
	}
	return i.meta.Name
}

func (i profileItem) Description() string {
	return fmt.Sprintf("%s · created %s", i.meta.ID, i.meta.CreatedAt.Format("2006-01-02"))
}

func (i profileItem) FilterValue() string {
	return i.meta.Name
}

// SelectorModel is the interactive profile picker.
type SelectorModel struct {
	list   list.Model
	choice string
	done   bool
}

// NewSelectorModel creates a selector over the registry's profiles with
// the active profile highlighted.
func NewSelectorModel(config model.AppConfig) SelectorModel {
	items := make([]list.Item, 0, len(config.Profiles))
	for _, meta := range config.Profiles {
		items = append(items, profileItem{
			meta:   meta,
			active: meta.ID == config.ActiveProfileID,
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(cli.PrimaryColor).
		BorderForeground(cli.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(cli.SubtleColor).
		BorderForeground(cli.PrimaryColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Switch profile"
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	l.SetShowStatusBar(false)

	return SelectorModel{list: l}
}

// Init implements tea.Model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.choice = item.meta.ID
			}
			m.done = true
			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the selector.
func (m SelectorModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// Choice returns the selected profile identifier, or "" if the selector
// was cancelled.
func (m SelectorModel) Choice() string {
	return m.choice
}

// SelectProfile runs the interactive picker and returns the switch intent
// for the chosen profile. A cancelled picker returns a nil intent.
func SelectProfile(config model.AppConfig) (session.Intent, error) {
	program := tea.NewProgram(NewSelectorModel(config), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("profile selector failed: %w", err)
	}

	m, ok := final.(SelectorModel)
	if !ok || m.Choice() == "" {
		return nil, nil
	}
	return session.SwitchProfileIntent{ID: m.Choice()}, nil
}
