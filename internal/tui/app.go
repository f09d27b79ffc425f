package tui

import (
	"context"
	"os"

	"adhkar-cli/internal/catalog"
	"adhkar-cli/internal/feedback"
	"adhkar-cli/internal/model"
	"adhkar-cli/internal/session"
	"adhkar-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type view int

const (
	viewCategories view = iota
	viewCategory
	viewReader
	viewNotes
	viewSettings
)

func (v view) String() string {
	switch v {
	case viewCategory:
		return "category"
	case viewReader:
		return "reader"
	case viewNotes:
		return "notes"
	case viewSettings:
		return "settings"
	default:
		return "categories"
	}
}

func parseView(s string) view {
	switch s {
	case "category":
		return viewCategory
	case "reader":
		return viewReader
	case "notes":
		return viewNotes
	case "settings":
		return viewSettings
	default:
		return viewCategories
	}
}

type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmDeleteNote
	confirmClearNotes
)

// Storage results arrive as messages so the single Update goroutine stays
// the only owner of model state.
type (
	settingsLoadedMsg struct{ settings model.Settings }
	notesLoadedMsg    struct{ notes []model.Note }
	noteMutatedMsg    struct{}
	storageErrMsg     struct{ err error }
)

type appModel struct {
	store   store.Store
	catalog *catalog.Catalog
	sess    *session.Session
	log     zerolog.Logger

	settings model.Settings

	view   view
	width  int
	height int
	status string

	categoriesList list.Model
	adhkarList     list.Model
	notesList      list.Model
	category       model.Category

	notes        []model.Note
	editor       textarea.Model
	editorOpen   bool
	editingID    string
	confirm      confirmTarget
	confirmFocus confirmModalFocus
	confirmID    string
	// busy is set while a note mutation is in flight; further mutating input
	// is ignored until the result message lands.
	busy bool

	settingsCursor int
}

func newAppModel(opts Options) *appModel {
	cat := catalog.Default()

	m := &appModel{
		store:    opts.Store,
		catalog:  cat,
		log:      newDebugLogger(),
		settings: model.DefaultSettings(),
	}
	m.sess = session.New(cat, feedback.Bell{Out: os.Stderr})

	var items []list.Item
	for _, c := range cat.Categories() {
		items = append(items, categoryItem{category: c})
	}
	m.categoriesList = newList(items, colorAccent)
	m.adhkarList = newList(nil, colorAccent)
	m.notesList = newList(nil, colorAccent)

	m.editor = textarea.New()
	m.editor.Placeholder = "Write your note..."
	m.editor.CharLimit = model.MaxNoteLen
	m.editor.ShowLineNumbers = false

	if opts.CategoryID != "" {
		m.openReader(opts.CategoryID, opts.DhikrID)
	} else {
		m.restoreState()
	}
	return m
}

// restoreState reopens the last screen. Best effort: any problem lands on
// the categories screen.
func (m *appModel) restoreState() {
	st, err := m.store.LoadTUIState()
	if err != nil || st == nil {
		return
	}
	switch parseView(st.View) {
	case viewCategory:
		if cat, ok := m.catalog.FindCategory(st.SelectedCategoryID); ok {
			m.enterCategory(cat)
		}
	case viewReader:
		m.openReader(st.SelectedCategoryID, st.OpenDhikrID)
	case viewNotes:
		m.view = viewNotes
	case viewSettings:
		m.view = viewSettings
	}
}

func (m *appModel) saveState() {
	st := &store.TUIState{View: m.view.String()}
	switch m.view {
	case viewCategory:
		st.SelectedCategoryID = m.category.ID
	case viewReader:
		st.SelectedCategoryID = m.category.ID
		if d, ok := m.sess.Current(); ok {
			st.OpenDhikrID = d.ID
		}
	}
	if err := m.store.SaveTUIState(st); err != nil {
		m.log.Warn().Err(err).Msg("save tui state")
	}
}

func (m *appModel) enterCategory(cat model.Category) {
	m.category = cat
	var items []list.Item
	for i, d := range cat.Adhkar {
		items = append(items, dhikrItem{dhikr: d, position: i + 1})
	}
	m.adhkarList = newList(items, categoryAccent(cat.ID))
	m.adhkarList.SetSize(m.contentWidth(), m.contentHeight())
	m.view = viewCategory
}

func (m *appModel) openReader(categoryID, dhikrID string) {
	res := m.sess.Open(categoryID, dhikrID)
	if !res.NotFound {
		if cat, ok := m.catalog.FindCategory(res.CategoryID); ok {
			if m.category.ID != cat.ID {
				m.enterCategory(cat)
			}
		}
	}
	m.view = viewReader
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(m.loadSettingsCmd(), m.loadNotesCmd(), textarea.Blink)
}

func (m *appModel) loadSettingsCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		st, err := s.LoadSettings(context.Background())
		if err != nil {
			return storageErrMsg{err: err}
		}
		return settingsLoadedMsg{settings: st}
	}
}

func (m *appModel) loadNotesCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		notes, err := s.ListNotes(context.Background())
		if err != nil {
			return storageErrMsg{err: err}
		}
		return notesLoadedMsg{notes: notes}
	}
}

func (m *appModel) applyPulsePreference() {
	if m.settings.PulsesEnabled {
		m.sess.SetFeedback(feedback.Bell{Out: os.Stderr})
	} else {
		m.sess.SetFeedback(feedback.Discard)
	}
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.categoriesList.SetSize(m.contentWidth(), m.contentHeight())
		m.adhkarList.SetSize(m.contentWidth(), m.contentHeight())
		m.notesList.SetSize(m.contentWidth(), m.contentHeight())
		m.editor.SetWidth(modalBodyWidth(m.width))
		return m, nil

	case settingsLoadedMsg:
		m.settings = msg.settings
		m.applyPulsePreference()
		return m, nil

	case notesLoadedMsg:
		m.notes = msg.notes
		m.busy = false
		var items []list.Item
		for _, n := range m.notes {
			items = append(items, noteItem{note: n})
		}
		idx := m.notesList.Index()
		m.notesList = newList(items, colorAccent)
		m.notesList.SetSize(m.contentWidth(), m.contentHeight())
		if idx < len(items) {
			m.notesList.Select(idx)
		}
		return m, nil

	case noteMutatedMsg:
		// Reload so the list reflects exactly what was persisted.
		return m, m.loadNotesCmd()

	case storageErrMsg:
		m.busy = false
		m.status = msg.err.Error()
		m.log.Error().Err(msg.err).Msg("storage operation failed")
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if m.editorOpen {
		return m.updateNoteEditor(msg)
	}
	if m.confirm != confirmNone {
		return m.updateConfirm(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		m.saveState()
		return m, tea.Quit
	}

	switch m.view {
	case viewCategories:
		return m.updateCategories(msg)
	case viewCategory:
		return m.updateCategory(msg)
	case viewReader:
		return m.updateReader(msg)
	case viewNotes:
		return m.updateNotes(msg)
	case viewSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

// updateFocused forwards non-key messages to whichever component animates.
func (m *appModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.editorOpen {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return cmd
	}
	return nil
}

func (m *appModel) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.categoriesList.SettingFilter() {
		switch msg.String() {
		case "q":
			m.saveState()
			return m, tea.Quit
		case "n":
			m.view = viewNotes
			return m, m.loadNotesCmd()
		case "s":
			m.view = viewSettings
			return m, nil
		case "enter":
			if it, ok := m.categoriesList.SelectedItem().(categoryItem); ok {
				m.enterCategory(it.category)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.categoriesList, cmd = m.categoriesList.Update(msg)
	return m, cmd
}

func (m *appModel) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.adhkarList.SettingFilter() {
		switch msg.String() {
		case "q":
			m.saveState()
			return m, tea.Quit
		case "esc":
			m.view = viewCategories
			return m, nil
		case "enter":
			if it, ok := m.adhkarList.SelectedItem().(dhikrItem); ok {
				m.openReader(m.category.ID, it.dhikr.ID)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.adhkarList, cmd = m.adhkarList.Update(msg)
	return m, cmd
}

func (m *appModel) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *appModel) contentHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (m *appModel) View() string {
	if m.editorOpen {
		return m.placeCentered(m.renderNoteEditor())
	}
	if m.confirm != confirmNone {
		return m.placeCentered(m.renderConfirm())
	}

	var body string
	switch m.view {
	case viewCategories:
		body = m.renderCategories()
	case viewCategory:
		body = m.renderCategoryView()
	case viewReader:
		body = m.renderReader()
	case viewNotes:
		body = m.renderNotesView()
	case viewSettings:
		body = m.renderSettingsView()
	}

	out := m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
	return out
}

func (m *appModel) placeCentered(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m *appModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render("Adhkar")
	crumb := ""
	switch m.view {
	case viewCategory:
		crumb = m.category.Title
	case viewReader:
		crumb = m.category.Title + " / reader"
	case viewNotes:
		crumb = "Notes"
	case viewSettings:
		crumb = "Settings"
	}
	if crumb != "" {
		crumb = styleMuted().Render("  " + crumb)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(title + crumb)
}

func (m *appModel) renderFooter() string {
	help := ""
	switch m.view {
	case viewCategories:
		help = "enter: open   n: notes   s: settings   /: filter   q: quit"
	case viewCategory:
		help = "enter: read   esc: back   /: filter   q: quit"
	case viewReader:
		help = "space/+: count   -: undo   r: reset   ←/→: navigate   esc: back   q: quit"
	case viewNotes:
		help = "a: add   enter: edit   d: delete   D: clear all   esc: back   q: quit"
	case viewSettings:
		help = "↑/↓: select   space/enter: toggle   esc: back   q: quit"
	}
	line := styleMuted().Render(help)
	if m.status != "" {
		line = lipgloss.NewStyle().Foreground(colorError).Render(m.status)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(line)
}

func (m *appModel) renderCategories() string {
	intro := styleMuted().Padding(0, 2).Render("Daily remembrance, morning to night.")
	return intro + "\n\n" + lipgloss.NewStyle().Padding(0, 2).Render(m.categoriesList.View())
}

func (m *appModel) renderCategoryView() string {
	desc := ""
	if m.category.Description != "" {
		desc = styleMuted().Padding(0, 2).Render(m.category.Description) + "\n\n"
	}
	return desc + lipgloss.NewStyle().Padding(0, 2).Render(m.adhkarList.View())
}
