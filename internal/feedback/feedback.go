// Package feedback gives reading screens a small tactile channel. On a
// terminal the closest analog to a haptic pulse is the bell, so the default
// implementation writes BEL bytes; everything else injects the interface.
package feedback

import "io"

// Kind distinguishes the brief confirmation pulse from the longer
// completion pulse.
type Kind int

const (
	// PulseShort acknowledges a single step (count, undo, reset).
	PulseShort Kind = iota
	// PulseLong marks reaching a repetition target.
	PulseLong
)

// Feedback emits pulses. Implementations must be fire-and-forget: a pulse
// never blocks and never reports failure to the caller.
type Feedback interface {
	Pulse(Kind)
}

// Discard swallows every pulse. Used when the user has turned pulses off.
var Discard Feedback = discard{}

type discard struct{}

func (discard) Pulse(Kind) {}

// Bell writes terminal bell bytes to Out. A long pulse is rendered as a
// double bell since terminals have no duration control.
type Bell struct {
	Out io.Writer
}

func (b Bell) Pulse(k Kind) {
	if b.Out == nil {
		return
	}
	switch k {
	case PulseLong:
		b.Out.Write([]byte{'\a', '\a'})
	default:
		b.Out.Write([]byte{'\a'})
	}
}

// Recorder captures pulses for assertions in tests.
type Recorder struct {
	Pulses []Kind
}

func (r *Recorder) Pulse(k Kind) { r.Pulses = append(r.Pulses, k) }

// Reset clears the recorded pulses.
func (r *Recorder) Reset() { r.Pulses = nil }
