package session

import (
	"testing"

	"adhkar-cli/internal/catalog"
	"adhkar-cli/internal/feedback"
	"adhkar-cli/internal/model"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]model.Category{
		{
			ID:    "morning",
			Title: "Morning",
			Adhkar: []model.Dhikr{
				{ID: "m-1", Arabic: "أ", Repeat: 3},
				{ID: "m-2", Arabic: "ب", Repeat: 1},
				{ID: "m-3", Arabic: "ت", Repeat: 2},
			},
		},
		{
			ID:     "empty",
			Title:  "Empty",
			Adhkar: nil,
		},
	})
}

func TestOpenResolvesItem(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	res := s.Open("morning", "m-2")
	if res.NotFound || res.Redirected {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.DhikrID != "m-2" {
		t.Fatalf("resolved %q, want m-2", res.DhikrID)
	}
	if s.State() != StateReady {
		t.Fatalf("state = %v, want Ready", s.State())
	}
	pos, total := s.Position()
	if pos != 2 || total != 3 {
		t.Fatalf("position = %d/%d, want 2/3", pos, total)
	}
}

func TestOpenMissingItemRedirectsToFirst(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	res := s.Open("morning", "gone")
	if res.NotFound {
		t.Fatal("should not be NotFound when the category exists")
	}
	if !res.Redirected || res.DhikrID != "m-1" {
		t.Fatalf("want redirect to m-1, got %+v", res)
	}
}

func TestOpenMissingCategory(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	res := s.Open("midnight", "m-1")
	if !res.NotFound {
		t.Fatalf("want NotFound, got %+v", res)
	}
	if s.State() != StateNotFound {
		t.Fatalf("state = %v, want NotFound", s.State())
	}

	// Controls are inert in NotFound; none may panic.
	s.Increment()
	s.Decrement()
	s.Reset()
	if _, ok := s.NavigateNext(); ok {
		t.Fatal("navigation succeeded in NotFound")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("Current returned an item in NotFound")
	}
}

func TestOpenEmptyCategoryIsNotFound(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	if res := s.Open("empty", ""); !res.NotFound {
		t.Fatalf("want NotFound for empty category, got %+v", res)
	}
}

func TestIncrementToTarget(t *testing.T) {
	t.Parallel()

	var rec feedback.Recorder
	s := New(testCatalog(), &rec)
	s.Open("morning", "m-1") // repeat 3

	s.Increment()
	s.Increment()
	if s.State() != StateCounting || s.Count() != 2 {
		t.Fatalf("state=%v count=%d after two increments", s.State(), s.Count())
	}

	s.Increment()
	if s.State() != StateCompleted || !s.Completed() {
		t.Fatalf("state=%v, want Completed at target", s.State())
	}
	if s.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", s.Progress())
	}

	// Past the target increments do nothing.
	s.Increment()
	if s.Count() != 3 {
		t.Fatalf("count = %d after increment past target, want 3", s.Count())
	}

	// Three short step pulses plus one long completion pulse.
	want := []feedback.Kind{
		feedback.PulseShort, feedback.PulseShort,
		feedback.PulseShort, feedback.PulseLong,
	}
	if len(rec.Pulses) != len(want) {
		t.Fatalf("pulses = %v, want %v", rec.Pulses, want)
	}
	for i, k := range want {
		if rec.Pulses[i] != k {
			t.Fatalf("pulse[%d] = %v, want %v", i, rec.Pulses[i], k)
		}
	}
}

func TestIncrementWithoutTargetIsNoop(t *testing.T) {
	t.Parallel()

	var rec feedback.Recorder
	s := New(testCatalog(), &rec)
	s.Open("morning", "m-2") // repeat 1, no counter

	if s.Target() != 0 {
		t.Fatalf("target = %d, want 0 for a counterless item", s.Target())
	}
	s.Increment()
	if s.Count() != 0 || len(rec.Pulses) != 0 {
		t.Fatalf("counterless increment changed state: count=%d pulses=%v",
			s.Count(), rec.Pulses)
	}
}

func TestDecrementClearsCompletion(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-3") // repeat 2
	s.Increment()
	s.Increment()
	if !s.Completed() {
		t.Fatal("not completed at target")
	}

	s.Decrement()
	if s.Completed() {
		t.Fatal("completion survived a decrement")
	}
	if s.Count() != 1 || s.State() != StateCounting {
		t.Fatalf("count=%d state=%v after decrement", s.Count(), s.State())
	}
}

func TestDecrementAtZeroIsNoop(t *testing.T) {
	t.Parallel()

	var rec feedback.Recorder
	s := New(testCatalog(), &rec)
	s.Open("morning", "m-1")
	s.Decrement()
	if s.Count() != 0 || len(rec.Pulses) != 0 {
		t.Fatalf("decrement at zero did something: count=%d pulses=%v",
			s.Count(), rec.Pulses)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-3")
	s.Increment()
	s.Increment()
	s.Reset()
	if s.Count() != 0 || s.Completed() || s.State() != StateReady {
		t.Fatalf("after reset: count=%d completed=%v state=%v",
			s.Count(), s.Completed(), s.State())
	}
}

func TestNavigationSweep(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-1")

	if _, ok := s.NavigatePrevious(); ok {
		t.Fatal("navigated back from the first item")
	}

	res, ok := s.NavigateNext()
	if !ok || res.DhikrID != "m-2" {
		t.Fatalf("next = %+v ok=%v, want m-2", res, ok)
	}
	res, ok = s.NavigateNext()
	if !ok || res.DhikrID != "m-3" {
		t.Fatalf("next = %+v ok=%v, want m-3", res, ok)
	}
	if _, ok := s.NavigateNext(); ok {
		t.Fatal("navigated forward from the last item")
	}

	res, ok = s.NavigatePrevious()
	if !ok || res.DhikrID != "m-2" {
		t.Fatalf("previous = %+v ok=%v, want m-2", res, ok)
	}
}

func TestNavigationResetsCounter(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-1")
	s.Increment()
	s.Increment()

	s.NavigateNext()
	if s.Count() != 0 || s.Completed() {
		t.Fatalf("counter survived navigation: count=%d", s.Count())
	}

	s.NavigatePrevious()
	if s.Count() != 0 {
		t.Fatalf("counter survived navigating back: count=%d", s.Count())
	}
}

func TestReopenSameItemKeepsCount(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-1")
	s.Increment()
	s.Open("morning", "m-1")
	if s.Count() != 1 {
		t.Fatalf("count = %d after reopening the same item, want 1", s.Count())
	}

	s.Open("morning", "m-3")
	if s.Count() != 0 {
		t.Fatalf("count = %d after opening another item, want 0", s.Count())
	}
}

func TestEvents(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	var got []Event
	s.Subscribe(func(e Event) { got = append(got, e) })

	s.Open("morning", "m-3")
	s.Increment()
	s.Increment() // completes
	s.Decrement()
	s.Reset()
	s.NavigateNext()

	want := []Event{
		EventOpened,
		EventIncremented,
		EventIncremented, EventCompleted,
		EventDecremented,
		EventReset,
		EventNavigated, EventOpened,
	}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	s := New(testCatalog(), nil)
	s.Open("morning", "m-1") // repeat 3
	if s.Progress() != 0 {
		t.Fatalf("progress = %v at start", s.Progress())
	}
	s.Increment()
	if got := s.Progress(); got <= 0.33 || got >= 0.34 {
		t.Fatalf("progress = %v, want 1/3", got)
	}
}
