package tui

import (
	"fmt"
	"strings"

	"adhkar-cli/internal/session"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit
	case "esc":
		if m.sess.State() == session.StateNotFound {
			m.view = viewCategories
		} else {
			m.view = viewCategory
		}
		return m, nil
	case " ", "+", "=":
		m.sess.Increment()
		return m, nil
	case "-", "_":
		m.sess.Decrement()
		return m, nil
	case "r":
		m.sess.Reset()
		return m, nil
	case "right", "l":
		m.sess.NavigateNext()
		return m, nil
	case "left", "h":
		m.sess.NavigatePrevious()
		return m, nil
	}
	return m, nil
}

func (m *appModel) renderReader() string {
	if m.sess.State() == session.StateNotFound {
		return m.renderReaderNotFound()
	}

	d, ok := m.sess.Current()
	if !ok {
		return m.renderReaderNotFound()
	}

	w := m.contentWidth()
	accent := categoryAccent(m.category.ID)
	pad := lipgloss.NewStyle().Padding(0, 2)

	pos, total := m.sess.Position()
	position := styleMuted().Render(fmt.Sprintf("%d / %d", pos, total))

	arabic := lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(colorSurfaceFg).
		Render(d.Arabic)

	sections := []string{position, "", arabic}

	if d.Transliteration != "" {
		sections = append(sections, "",
			styleMuted().Width(w).Align(lipgloss.Center).Italic(true).Render(d.Transliteration))
	}
	if d.Translation != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Width(w).Foreground(colorSurfaceFg).Render(d.Translation))
	}
	if d.Source != "" {
		sections = append(sections, "", styleMuted().Width(w).Render(d.Source))
	}
	if d.Virtue != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Width(w).Foreground(accent).Render(d.Virtue))
	}

	sections = append(sections, "", m.renderCounter(accent, w))

	return pad.Render(strings.Join(sections, "\n"))
}

func (m *appModel) renderCounter(accent lipgloss.TerminalColor, w int) string {
	if !m.sess.HasCounter() {
		return styleMuted().Render("Read once.")
	}

	count := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render(fmt.Sprintf("%d / %d", m.sess.Count(), m.sess.Target()))

	barW := w
	if barW > 40 {
		barW = 40
	}
	bar := progress.New(
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
		progress.WithSolidFill(categoryFillColor(m.category.ID)),
	)
	gauge := bar.ViewAs(m.sess.Progress())

	out := count + "\n" + gauge
	if m.sess.Completed() {
		done := lipgloss.NewStyle().Bold(true).Foreground(colorDone).
			Render("Completed, may Allah accept.")
		out += "\n\n" + done
	}
	return out
}

func (m *appModel) renderReaderNotFound() string {
	w := m.contentWidth()
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)
	body := strings.Join([]string{
		center.Bold(true).Foreground(colorSurfaceFg).Render("لم يتم العثور على الذكر"),
		center.Render("Dhikr not found"),
		"",
		styleMuted().Width(w).Align(lipgloss.Center).Render("esc: back to categories"),
	}, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
