package tui

import (
	"strings"
	"testing"

	"adhkar-cli/internal/session"
	"adhkar-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) *appModel {
	t.Helper()
	m := newAppModel(Options{Store: store.Store{Dir: t.TempDir()}})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// drain runs a command synchronously and feeds resulting messages back into
// the model, like the bubbletea runtime would.
func drain(t *testing.T, m *appModel, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(t, m, c)
			}
			return
		}
		_, cmd = m.Update(msg)
	}
}

func TestStartsOnCategories(t *testing.T) {
	m := newTestApp(t)
	if m.view != viewCategories {
		t.Fatalf("view = %v, want categories", m.view)
	}
	if !strings.Contains(m.View(), "Morning Adhkar") {
		t.Fatal("categories screen does not list Morning Adhkar")
	}
}

func TestEnterCategoryAndReader(t *testing.T) {
	m := newTestApp(t)

	m.Update(keyType(tea.KeyEnter))
	if m.view != viewCategory || m.category.ID != "morning" {
		t.Fatalf("view=%v category=%q after enter", m.view, m.category.ID)
	}

	m.Update(keyType(tea.KeyEnter))
	if m.view != viewReader {
		t.Fatalf("view = %v, want reader", m.view)
	}
	d, ok := m.sess.Current()
	if !ok || d.ID != "morning-1" {
		t.Fatalf("reader opened %q, want morning-1", d.ID)
	}
	if !strings.Contains(m.View(), "1 / 30") {
		t.Fatal("reader does not show position 1 / 30")
	}
}

func TestReaderCounterKeys(t *testing.T) {
	m := newTestApp(t)
	m.openReader("sleep", "sleep-3") // repeat 33

	m.Update(keyRunes(" "))
	m.Update(keyRunes("+"))
	if m.sess.Count() != 2 {
		t.Fatalf("count = %d after two increments", m.sess.Count())
	}

	m.Update(keyRunes("-"))
	if m.sess.Count() != 1 {
		t.Fatalf("count = %d after decrement", m.sess.Count())
	}

	m.Update(keyRunes("r"))
	if m.sess.Count() != 0 {
		t.Fatalf("count = %d after reset", m.sess.Count())
	}
}

func TestReaderNavigationKeys(t *testing.T) {
	m := newTestApp(t)
	m.openReader("sleep", "sleep-1")

	m.Update(keyType(tea.KeyRight))
	d, _ := m.sess.Current()
	if d.ID != "sleep-2" {
		t.Fatalf("current = %q after right, want sleep-2", d.ID)
	}

	m.Update(keyType(tea.KeyLeft))
	d, _ = m.sess.Current()
	if d.ID != "sleep-1" {
		t.Fatalf("current = %q after left, want sleep-1", d.ID)
	}

	// At the start, left is a no-op.
	m.Update(keyType(tea.KeyLeft))
	d, _ = m.sess.Current()
	if d.ID != "sleep-1" {
		t.Fatalf("current = %q, navigation should stop at the edge", d.ID)
	}
}

func TestReaderNotFound(t *testing.T) {
	m := newTestApp(t)
	m.openReader("midnight", "")

	if m.sess.State() != session.StateNotFound {
		t.Fatalf("state = %v, want NotFound", m.sess.State())
	}
	out := m.View()
	if !strings.Contains(out, "Dhikr not found") {
		t.Fatal("NotFound screen missing message")
	}

	// Counter keys must be inert, esc goes home.
	m.Update(keyRunes(" "))
	m.Update(keyType(tea.KeyEsc))
	if m.view != viewCategories {
		t.Fatalf("view = %v after esc from NotFound", m.view)
	}
}

func TestReaderRedirectsToFirstItem(t *testing.T) {
	m := newTestApp(t)
	m.openReader("evening", "gone")

	d, ok := m.sess.Current()
	if !ok || d.ID != "evening-1" {
		t.Fatalf("current = %q, want redirect to evening-1", d.ID)
	}
}

func TestNotesCreateFlow(t *testing.T) {
	m := newTestApp(t)
	drain(t, m, m.loadNotesCmd())

	m.view = viewNotes
	m.Update(keyRunes("a"))
	if !m.editorOpen {
		t.Fatal("editor did not open")
	}

	m.editor.SetValue("a thought")
	_, cmd := m.Update(keyType(tea.KeyCtrlS))
	if m.editorOpen {
		t.Fatal("editor still open after save")
	}
	if !m.busy {
		t.Fatal("mutation in flight should set busy")
	}
	drain(t, m, cmd)

	if m.busy {
		t.Fatal("busy not cleared after reload")
	}
	if len(m.notes) != 1 || m.notes[0].Text != "a thought" {
		t.Fatalf("notes = %+v", m.notes)
	}
}

func TestNotesEmptySaveRejected(t *testing.T) {
	m := newTestApp(t)
	m.view = viewNotes
	m.Update(keyRunes("a"))
	m.editor.SetValue("   ")
	m.Update(keyType(tea.KeyCtrlS))
	if !m.editorOpen {
		t.Fatal("editor closed on empty save")
	}
	if m.status == "" {
		t.Fatal("no status message for empty save")
	}
}

func TestNotesDeleteConfirm(t *testing.T) {
	m := newTestApp(t)
	drain(t, m, m.saveNoteCmd("", "to delete"))
	m.view = viewNotes

	m.Update(keyRunes("d"))
	if m.confirm != confirmDeleteNote {
		t.Fatalf("confirm = %v, want delete", m.confirm)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatal("confirm should start focused on cancel")
	}

	// enter on cancel dismisses.
	m.Update(keyType(tea.KeyEnter))
	if m.confirm != confirmNone {
		t.Fatal("cancel did not dismiss confirm")
	}
	if len(m.notes) != 1 {
		t.Fatalf("cancel deleted the note: %+v", m.notes)
	}

	// tab to confirm, enter deletes.
	m.Update(keyRunes("d"))
	m.Update(keyType(tea.KeyTab))
	_, cmd := m.Update(keyType(tea.KeyEnter))
	drain(t, m, cmd)
	if len(m.notes) != 0 {
		t.Fatalf("notes after delete = %+v", m.notes)
	}
}

func TestNotesClearAllConfirm(t *testing.T) {
	m := newTestApp(t)
	drain(t, m, m.saveNoteCmd("", "one"))
	drain(t, m, m.saveNoteCmd("", "two"))
	m.view = viewNotes

	m.Update(keyRunes("D"))
	if m.confirm != confirmClearNotes {
		t.Fatalf("confirm = %v, want clear", m.confirm)
	}
	_, cmd := m.Update(keyRunes("y"))
	drain(t, m, cmd)
	if len(m.notes) != 0 {
		t.Fatalf("notes after clear = %+v", m.notes)
	}
}

func TestBusyBlocksMutatingInput(t *testing.T) {
	m := newTestApp(t)
	m.view = viewNotes
	m.busy = true

	m.Update(keyRunes("a"))
	if m.editorOpen {
		t.Fatal("editor opened while busy")
	}
	m.Update(keyRunes("D"))
	if m.confirm != confirmNone {
		t.Fatal("confirm opened while busy")
	}
}

func TestStateRestore(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	if err := s.SaveTUIState(&store.TUIState{
		View:               "reader",
		SelectedCategoryID: "sleep",
		OpenDhikrID:        "sleep-4",
	}); err != nil {
		t.Fatal(err)
	}

	m := newAppModel(Options{Store: s})
	if m.view != viewReader {
		t.Fatalf("view = %v, want reader", m.view)
	}
	d, _ := m.sess.Current()
	if d.ID != "sleep-4" {
		t.Fatalf("restored %q, want sleep-4", d.ID)
	}
}

func TestExplicitTargetBeatsRestore(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	s.SaveTUIState(&store.TUIState{View: "notes"})

	m := newAppModel(Options{Store: s, CategoryID: "morning"})
	if m.view != viewReader {
		t.Fatalf("view = %v, want reader for explicit category", m.view)
	}
}

func TestQuitSavesState(t *testing.T) {
	dir := t.TempDir()
	s := store.Store{Dir: dir}
	m := newAppModel(Options{Store: s})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(keyType(tea.KeyEnter)) // into morning
	m.Update(keyRunes("q"))

	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatal(err)
	}
	if st.View != "category" || st.SelectedCategoryID != "morning" {
		t.Fatalf("saved state = %+v", st)
	}
}
