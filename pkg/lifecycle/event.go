// Package lifecycle records construction, destruction and capability events
// and releases scoped objects in a fixed order.
package lifecycle

import (
	"fmt"
	"io"
	"sync"
)

// Kind is the kind of an Event.
type Kind int

const (
	Constructed Kind = iota
	Destructed
	Printing
	Scanning
)

func (k Kind) String() string {
	switch k {
	case Constructed:
		return "constructed"
	case Destructed:
		return "destructed"
	case Printing:
		return "printing"
	case Scanning:
		return "scanning"
	default:
		return "unknown"
	}
}

// Event is a single observable step in an object's life.
type Event struct {
	Type string
	Kind Kind
}

// String renders the console line for e.
func (e Event) String() string {
	switch e.Kind {
	case Constructed:
		// D reads differently from the others on the console.
		if e.Type == "D" {
			return "D constructor called"
		}
		return e.Type + " Constructor"
	case Destructed:
		return e.Type + " destructor called"
	case Printing:
		return "Printing..."
	case Scanning:
		return "Scanning..."
	default:
		return fmt.Sprintf("%s %s", e.Type, e.Kind)
	}
}

// Tracer receives events in the order they happen.
type Tracer interface {
	Emit(Event)
}

// Recorder is an in-memory Tracer.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Lines returns the recorded events rendered as console lines.
func (r *Recorder) Lines() []string {
	events := r.Events()
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = e.String()
	}
	return lines
}

// Count returns how many times e was recorded.
func (r *Recorder) Count(e Event) int {
	n := 0
	for _, got := range r.Events() {
		if got == e {
			n++
		}
	}
	return n
}

// WriterTracer writes one line per event to W. Write errors are dropped,
// the same way a console stream would drop them.
type WriterTracer struct {
	W io.Writer
}

func (w WriterTracer) Emit(e Event) {
	fmt.Fprintln(w.W, e.String())
}

type tee []Tracer

func (t tee) Emit(e Event) {
	for _, tr := range t {
		tr.Emit(e)
	}
}

// Tee returns a Tracer that forwards every event to each of tracers in turn.
func Tee(tracers ...Tracer) Tracer {
	return tee(tracers)
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc func(Event)

func (f TracerFunc) Emit(e Event) { f(e) }
