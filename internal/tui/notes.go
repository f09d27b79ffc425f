package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.notesList.SettingFilter() {
		switch msg.String() {
		case "q":
			m.saveState()
			return m, tea.Quit
		case "esc":
			m.view = viewCategories
			return m, nil
		case "a":
			if m.busy {
				return m, nil
			}
			m.openNoteEditor("", "")
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.openNoteEditor(it.note.ID, it.note.Text)
			}
			return m, nil
		case "d":
			if m.busy {
				return m, nil
			}
			if it, ok := m.notesList.SelectedItem().(noteItem); ok {
				m.confirm = confirmDeleteNote
				m.confirmFocus = confirmFocusCancel
				m.confirmID = it.note.ID
			}
			return m, nil
		case "D":
			if m.busy || len(m.notes) == 0 {
				return m, nil
			}
			m.confirm = confirmClearNotes
			m.confirmFocus = confirmFocusCancel
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.notesList, cmd = m.notesList.Update(msg)
	return m, cmd
}

func (m *appModel) openNoteEditor(id, text string) {
	m.editingID = id
	m.editor.SetValue(text)
	m.editor.SetWidth(modalBodyWidth(m.width))
	m.editor.SetHeight(6)
	m.editor.Focus()
	m.editorOpen = true
}

func (m *appModel) closeNoteEditor() {
	m.editorOpen = false
	m.editingID = ""
	m.editor.Blur()
	m.editor.SetValue("")
}

func (m *appModel) updateNoteEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeNoteEditor()
		return m, nil
	case "ctrl+s":
		text := strings.TrimSpace(m.editor.Value())
		if text == "" {
			m.status = "note text is empty"
			return m, nil
		}
		id := m.editingID
		m.closeNoteEditor()
		m.busy = true
		return m, m.saveNoteCmd(id, text)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *appModel) saveNoteCmd(id, text string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = s.CreateNote(context.Background(), text)
		} else {
			err = s.UpdateNote(context.Background(), id, text)
		}
		if err != nil {
			return storageErrMsg{err: err}
		}
		return noteMutatedMsg{}
	}
}

func (m *appModel) deleteNoteCmd(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.DeleteNote(context.Background(), id); err != nil {
			return storageErrMsg{err: err}
		}
		return noteMutatedMsg{}
	}
}

func (m *appModel) clearNotesCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.ClearNotes(context.Background()); err != nil {
			return storageErrMsg{err: err}
		}
		return noteMutatedMsg{}
	}
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g", "n":
		m.confirm = confirmNone
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusConfirm
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "y":
		m.confirmFocus = confirmFocusConfirm
		return m.runConfirmed()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.runConfirmed()
		}
		m.confirm = confirmNone
		return m, nil
	}
	return m, nil
}

func (m *appModel) runConfirmed() (tea.Model, tea.Cmd) {
	target := m.confirm
	id := m.confirmID
	m.confirm = confirmNone
	m.confirmID = ""
	m.busy = true
	switch target {
	case confirmDeleteNote:
		return m, m.deleteNoteCmd(id)
	case confirmClearNotes:
		return m, m.clearNotesCmd()
	}
	m.busy = false
	return m, nil
}

func (m *appModel) renderNotesView() string {
	if len(m.notes) == 0 && !m.notesList.SettingFilter() {
		empty := strings.Join([]string{
			styleMuted().Render("No notes yet."),
			"",
			styleMuted().Render("Press a to write your first note."),
		}, "\n")
		return lipgloss.NewStyle().Padding(1, 2).Render(empty)
	}
	count := styleMuted().Padding(0, 2).Render(fmt.Sprintf("%d note(s), newest first", len(m.notes)))
	return count + "\n\n" + lipgloss.NewStyle().Padding(0, 2).Render(m.notesList.View())
}

func (m *appModel) renderNoteEditor() string {
	title := "New note"
	if m.editingID != "" {
		title = "Edit note"
	}
	remaining := fmt.Sprintf("%d characters left", m.editor.CharLimit-len([]rune(m.editor.Value())))
	content := strings.Join([]string{
		m.editor.View(),
		"",
		styleMuted().Render(remaining),
		"",
		styleMuted().Render("ctrl+s: save   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, title, content)
}

func (m *appModel) renderConfirm() string {
	switch m.confirm {
	case confirmDeleteNote:
		return renderConfirmModal(m.width, "Delete note",
			"Delete this note? This cannot be undone.",
			"Delete", "Cancel", m.confirmFocus)
	case confirmClearNotes:
		return renderConfirmModal(m.width, "Clear all notes",
			fmt.Sprintf("Delete all %d notes? This cannot be undone.", len(m.notes)),
			"Delete all", "Cancel", m.confirmFocus)
	}
	return ""
}
