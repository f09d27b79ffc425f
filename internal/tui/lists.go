package tui

import (
	"fmt"
	"strings"
	"time"

	"adhkar-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

func newList(items []list.Item, accent lipgloss.TerminalColor) list.Model {
	l := list.New(items, newCompactItemDelegate(accent), 0, 0)
	// We render our own header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

type categoryItem struct {
	category model.Category
}

func (i categoryItem) FilterValue() string { return i.category.Title }

func (i categoryItem) Title() string {
	count := styleMuted().Render(fmt.Sprintf("  %d adhkar", len(i.category.Adhkar)))
	return fmt.Sprintf("%s  %s%s", i.category.Title, i.category.ArabicTitle, count)
}

type dhikrItem struct {
	dhikr    model.Dhikr
	position int
}

func (i dhikrItem) FilterValue() string {
	return i.dhikr.Translation + " " + i.dhikr.Transliteration
}

func (i dhikrItem) Title() string {
	label := firstLine(i.dhikr.Arabic)
	repeat := ""
	if i.dhikr.HasCounter() {
		repeat = styleMuted().Render(fmt.Sprintf("  x%d", i.dhikr.Repeat))
	}
	return fmt.Sprintf("%2d. %s%s", i.position, label, repeat)
}

type noteItem struct {
	note model.Note
}

func (i noteItem) FilterValue() string { return i.note.Text }

func (i noteItem) Title() string {
	when := time.UnixMilli(i.note.Timestamp).Format("2006-01-02 15:04")
	return fmt.Sprintf("%s  %s", styleMuted().Render(when), firstLine(i.note.Text))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
