package docs

import "testing"

func TestTopics(t *testing.T) {
	t.Parallel()

	topics := Topics()
	want := map[string]bool{"about": false, "notes": false, "reading": false}
	for _, topic := range topics {
		if _, ok := want[topic]; !ok {
			t.Errorf("unexpected topic %q", topic)
			continue
		}
		want[topic] = true
	}
	for topic, seen := range want {
		if !seen {
			t.Errorf("topic %q missing", topic)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get("about")
	if !ok || body == "" {
		t.Fatal("about topic missing")
	}
	if _, ok := Get("  READING  "); !ok {
		t.Fatal("lookup should trim and lowercase")
	}
	if _, ok := Get("nope"); ok {
		t.Fatal("unknown topic found")
	}
	if _, ok := Get(""); ok {
		t.Fatal("empty topic found")
	}
}
