package tui

import (
	"context"
	"strings"

	"adhkar-cli/internal/docs"
	"adhkar-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsRows is the fixed toggle order on the settings screen.
var settingsRows = []struct {
	label string
	hint  string
}{
	{"Daily reminders", "Coming soon: a gentle nudge for morning and evening adhkar."},
	{"Feedback pulses", "Terminal bell on counting and completion."},
}

func (m *appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit
	case "esc":
		m.view = viewCategories
		return m, nil
	case "up", "k", "ctrl+p":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case "down", "j", "ctrl+n":
		if m.settingsCursor < len(settingsRows)-1 {
			m.settingsCursor++
		}
		return m, nil
	case " ", "enter":
		switch m.settingsCursor {
		case 0:
			m.settings.RemindersEnabled = !m.settings.RemindersEnabled
		case 1:
			m.settings.PulsesEnabled = !m.settings.PulsesEnabled
			m.applyPulsePreference()
		}
		return m, m.saveSettingsCmd(m.settings)
	}
	return m, nil
}

func (m *appModel) saveSettingsCmd(st model.Settings) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.SaveSettings(context.Background(), st); err != nil {
			return storageErrMsg{err: err}
		}
		return settingsLoadedMsg{settings: st}
	}
}

func aboutMarkdown() string {
	body, _ := docs.Get("about")
	return body
}

func (m *appModel) renderSettingsView() string {
	w := m.contentWidth()
	values := []bool{m.settings.RemindersEnabled, m.settings.PulsesEnabled}

	var rows []string
	for i, row := range settingsRows {
		toggle := "[ ]"
		if values[i] {
			toggle = "[x]"
		}
		line := toggle + " " + row.label
		st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
		if i == m.settingsCursor {
			st = st.Bold(true).Background(colorSelectedBg).Foreground(colorSelectedFg)
		}
		rows = append(rows, st.Render(line))
		rows = append(rows, styleMuted().Width(w).Render("    "+row.hint))
		rows = append(rows, "")
	}

	rows = append(rows, renderMarkdown(aboutMarkdown(), w))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(rows, "\n"))
}
