package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"adhkar-cli/internal/model"
)

const notesKey = "personal_notes"

// ErrEmptyNote is returned when a note would be created or updated with no
// text after trimming.
var ErrEmptyNote = errors.New("note text is empty")

// Notes are kept as one JSON array under a single key, newest first. Every
// mutation is a read-modify-write of the whole array; concurrent writers
// therefore race last-writer-wins, which is acceptable for a single-user
// on-device store and matches the original behavior.

// ListNotes returns all notes, newest first. A missing or malformed blob
// reads as an empty list; the blob is left untouched until the next write.
func (s Store) ListNotes(ctx context.Context) ([]model.Note, error) {
	b, err := s.Get(ctx, notesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var notes []model.Note
	if err := json.Unmarshal(b, &notes); err != nil {
		return nil, nil
	}
	return notes, nil
}

func (s Store) saveNotes(ctx context.Context, notes []model.Note) error {
	b, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	return s.Set(ctx, notesKey, b)
}

// CreateNote prepends a new note and returns it. IDs are the creation time
// in epoch milliseconds; a same-millisecond collision bumps the id until it
// is unique.
func (s Store) CreateNote(ctx context.Context, text string) (model.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Note{}, ErrEmptyNote
	}
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return model.Note{}, err
	}

	now := time.Now().UnixMilli()
	taken := make(map[string]bool, len(notes))
	for _, n := range notes {
		taken[n.ID] = true
	}
	id := strconv.FormatInt(now, 10)
	for bump := now; taken[id]; bump++ {
		id = strconv.FormatInt(bump+1, 10)
	}

	note := model.Note{ID: id, Text: text, Timestamp: now}
	if err := s.saveNotes(ctx, append([]model.Note{note}, notes...)); err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// UpdateNote replaces the text of the note with the given id and refreshes
// its timestamp to the modification time; the id never changes. An unknown
// id is a silent no-op: the collection is written back unchanged.
func (s Store) UpdateNote(ctx context.Context, id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyNote
	}
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Text = text
			notes[i].Timestamp = time.Now().UnixMilli()
			break
		}
	}
	return s.saveNotes(ctx, notes)
}

// DeleteNote removes the note with the given id. An unknown id is a silent
// no-op and skips the write.
func (s Store) DeleteNote(ctx context.Context, id string) error {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return nil
	}
	return s.saveNotes(ctx, kept)
}

// ClearNotes removes every note by dropping the key.
func (s Store) ClearNotes(ctx context.Context) error {
	return s.Delete(ctx, notesKey)
}
