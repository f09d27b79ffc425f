// Package session holds the state of one reading session: which dhikr is
// open, how many repetitions have been counted and whether the target has
// been reached. The machine is owned by a single screen and is not safe for
// concurrent use.
package session

import (
	"adhkar-cli/internal/catalog"
	"adhkar-cli/internal/feedback"
	"adhkar-cli/internal/model"
)

// State is the observable phase of a session.
type State int

const (
	// StateReady means the item is open and no repetitions are counted.
	StateReady State = iota
	// StateCounting means at least one repetition is counted, target not met.
	StateCounting
	// StateCompleted means the repetition target has been reached.
	StateCompleted
	// StateNotFound means the requested category does not exist. Terminal
	// until the next Open.
	StateNotFound
)

// Event describes a discrete session transition. Events exist so a screen
// can animate them; the machine never waits for the subscriber.
type Event int

const (
	EventOpened Event = iota
	EventIncremented
	EventDecremented
	EventCompleted
	EventReset
	EventNavigated
)

// Subscriber receives events after the state they describe is committed.
type Subscriber func(Event)

// OpenResult reports how an Open call resolved.
type OpenResult struct {
	// CategoryID and DhikrID are the resolved pair, empty on NotFound.
	CategoryID string
	DhikrID    string
	// Redirected is set when the requested item id did not exist and the
	// session fell back to the first item of the category.
	Redirected bool
	NotFound   bool
}

// Session is a reading-session state machine over an immutable catalog.
type Session struct {
	catalog *catalog.Catalog
	fb      feedback.Feedback
	notify  Subscriber

	category  model.Category
	index     int
	count     int
	completed bool
	notFound  bool
	opened    bool
}

// New builds a session. fb may be nil to disable pulses.
func New(c *catalog.Catalog, fb feedback.Feedback) *Session {
	if fb == nil {
		fb = feedback.Discard
	}
	return &Session{catalog: c, fb: fb, notFound: true}
}

// Subscribe sets the event subscriber. Pass nil to detach.
func (s *Session) Subscribe(fn Subscriber) { s.notify = fn }

// SetFeedback swaps the pulse sink, e.g. when the user toggles pulses off.
func (s *Session) SetFeedback(fb feedback.Feedback) {
	if fb == nil {
		fb = feedback.Discard
	}
	s.fb = fb
}

func (s *Session) emit(e Event) {
	if s.notify != nil {
		s.notify(e)
	}
}

// Open resolves a category/item pair and makes it current. A missing
// category yields NotFound. A missing item id inside an existing category
// falls back to the category's first item and reports Redirected, so the
// caller can rewrite its location. The counter resets whenever the resolved
// item differs from the one already open.
func (s *Session) Open(categoryID, dhikrID string) OpenResult {
	cat, ok := s.catalog.FindCategory(categoryID)
	if !ok || len(cat.Adhkar) == 0 {
		s.notFound = true
		s.opened = false
		s.count = 0
		s.completed = false
		return OpenResult{NotFound: true}
	}

	idx := 0
	redirected := true
	if _, i, found := s.catalog.FindDhikr(cat.ID, dhikrID); found {
		idx = i
		redirected = false
	}

	sameItem := s.opened && !s.notFound &&
		s.category.ID == cat.ID && s.index == idx
	s.category = cat
	s.index = idx
	s.notFound = false
	s.opened = true
	if !sameItem {
		s.count = 0
		s.completed = false
	}
	s.emit(EventOpened)
	return OpenResult{
		CategoryID: cat.ID,
		DhikrID:    cat.Adhkar[idx].ID,
		Redirected: redirected,
	}
}

// Increment counts one repetition. It does nothing when no item is open,
// the item has no counter, or the target is already met. Reaching the
// target completes the session with a long pulse.
func (s *Session) Increment() {
	if s.notFound || !s.opened {
		return
	}
	d := s.category.Adhkar[s.index]
	if !d.HasCounter() || s.count >= d.Repeat {
		return
	}
	s.count++
	s.fb.Pulse(feedback.PulseShort)
	s.emit(EventIncremented)
	if s.count == d.Repeat {
		s.completed = true
		s.fb.Pulse(feedback.PulseLong)
		s.emit(EventCompleted)
	}
}

// Decrement undoes one repetition. A decrement always clears completion,
// since the count no longer equals the target. No-op at zero.
func (s *Session) Decrement() {
	if s.notFound || !s.opened || s.count == 0 {
		return
	}
	s.count--
	s.completed = false
	s.fb.Pulse(feedback.PulseShort)
	s.emit(EventDecremented)
}

// Reset returns the counter to zero.
func (s *Session) Reset() {
	if s.notFound || !s.opened {
		return
	}
	s.count = 0
	s.completed = false
	s.fb.Pulse(feedback.PulseShort)
	s.emit(EventReset)
}

// NavigateNext opens the next item in the category. No-op on the last item.
func (s *Session) NavigateNext() (OpenResult, bool) {
	return s.navigate(1)
}

// NavigatePrevious opens the previous item. No-op on the first item.
func (s *Session) NavigatePrevious() (OpenResult, bool) {
	return s.navigate(-1)
}

func (s *Session) navigate(delta int) (OpenResult, bool) {
	if s.notFound || !s.opened {
		return OpenResult{NotFound: true}, false
	}
	next := s.index + delta
	if next < 0 || next >= len(s.category.Adhkar) {
		return OpenResult{}, false
	}
	s.index = next
	s.count = 0
	s.completed = false
	s.emit(EventNavigated)
	s.emit(EventOpened)
	return OpenResult{
		CategoryID: s.category.ID,
		DhikrID:    s.category.Adhkar[next].ID,
	}, true
}

// State reports the current phase.
func (s *Session) State() State {
	switch {
	case s.notFound || !s.opened:
		return StateNotFound
	case s.completed:
		return StateCompleted
	case s.count > 0:
		return StateCounting
	default:
		return StateReady
	}
}

// Current returns the open item. ok is false in NotFound.
func (s *Session) Current() (model.Dhikr, bool) {
	if s.notFound || !s.opened {
		return model.Dhikr{}, false
	}
	return s.category.Adhkar[s.index], true
}

// Category returns the open category. Zero value in NotFound.
func (s *Session) Category() model.Category {
	if s.notFound || !s.opened {
		return model.Category{}
	}
	return s.category
}

// Count reports counted repetitions.
func (s *Session) Count() int { return s.count }

// Target reports the repetition target, 0 when the item has no counter.
func (s *Session) Target() int {
	d, ok := s.Current()
	if !ok || !d.HasCounter() {
		return 0
	}
	return d.Repeat
}

// HasCounter reports whether the open item tracks repetitions.
func (s *Session) HasCounter() bool { return s.Target() > 0 }

// Completed reports whether the target has been reached.
func (s *Session) Completed() bool { return s.completed }

// Progress is the counted fraction of the target in [0,1]. Items without a
// counter always report 0.
func (s *Session) Progress() float64 {
	t := s.Target()
	if t == 0 {
		return 0
	}
	return float64(s.count) / float64(t)
}

// Position reports the 1-based index of the open item and the category
// size, for the "n / total" readout. Both are 0 in NotFound.
func (s *Session) Position() (int, int) {
	if s.notFound || !s.opened {
		return 0, 0
	}
	return s.index + 1, len(s.category.Adhkar)
}
