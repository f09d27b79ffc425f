package model

// Category is a themed grouping of adhkar (e.g. morning, evening, sleep).
// The catalog of categories is compiled in and immutable for the process
// lifetime; nothing mutates these values after startup.
type Category struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	ArabicTitle       string  `json:"arabicTitle"`
	Description       string  `json:"description"`
	ArabicDescription string  `json:"arabicDescription"`
	Adhkar            []Dhikr `json:"adhkar"`
}

// Dhikr is a single remembrance text. Repeat is the number of times the
// reader is expected to recite it; 0 or 1 means no counter is shown.
type Dhikr struct {
	ID              string `json:"id"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration,omitempty"`
	Translation     string `json:"translation,omitempty"`
	Source          string `json:"source,omitempty"`
	Virtue          string `json:"virtue,omitempty"`
	Repeat          int    `json:"repeat,omitempty"`
}

// HasCounter reports whether the dhikr needs a repetition counter at all.
func (d Dhikr) HasCounter() bool { return d.Repeat > 1 }

// Note is a user-authored text entry. The ID is assigned at creation and
// never changes; Timestamp is epoch milliseconds of the last create/edit.
//
// The wire shape ({id, text, timestamp}) is persisted as a single JSON array
// under one storage key, so field names here are a compatibility contract.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Settings holds small user preferences from the settings screen.
type Settings struct {
	// RemindersEnabled persists the daily-reminders toggle. Actual reminder
	// delivery is out of scope; the toggle only gates UI copy.
	RemindersEnabled bool `json:"remindersEnabled"`
	// PulsesEnabled gates the terminal-bell feedback on counter events.
	PulsesEnabled bool `json:"pulsesEnabled"`
}

// DefaultSettings mirrors the first-launch behavior of the app.
func DefaultSettings() Settings {
	return Settings{RemindersEnabled: false, PulsesEnabled: true}
}

// MaxNoteLen is the input-level bound on note text length, in runes.
const MaxNoteLen = 500
