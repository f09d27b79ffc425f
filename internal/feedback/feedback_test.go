package feedback

import (
	"bytes"
	"testing"
)

func TestBellPulse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := Bell{Out: &buf}

	b.Pulse(PulseShort)
	if got := buf.String(); got != "\a" {
		t.Fatalf("short pulse wrote %q, want single bell", got)
	}

	buf.Reset()
	b.Pulse(PulseLong)
	if got := buf.String(); got != "\a\a" {
		t.Fatalf("long pulse wrote %q, want double bell", got)
	}
}

func TestBellNilOut(t *testing.T) {
	t.Parallel()

	// Must not panic.
	Bell{}.Pulse(PulseShort)
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder
	r.Pulse(PulseShort)
	r.Pulse(PulseLong)
	if len(r.Pulses) != 2 || r.Pulses[0] != PulseShort || r.Pulses[1] != PulseLong {
		t.Fatalf("recorded %v", r.Pulses)
	}
	r.Reset()
	if len(r.Pulses) != 0 {
		t.Fatalf("reset left %v", r.Pulses)
	}
}
