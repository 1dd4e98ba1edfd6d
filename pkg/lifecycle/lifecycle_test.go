package lifecycle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	name string
	log  *[]string
}

func (n named) Destroy() {
	*n.log = append(*n.log, n.name)
}

func TestEventString(t *testing.T) {
	cases := []struct {
		e    Event
		want string
	}{
		{Event{"D", Constructed}, "D constructor called"},
		{Event{"P", Constructed}, "P Constructor"},
		{Event{"PS", Constructed}, "PS Constructor"},
		{Event{"S", Destructed}, "S destructor called"},
		{Event{"P", Printing}, "Printing..."},
		{Event{"S", Scanning}, "Scanning..."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.e.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Emit(Event{"D", Constructed})
	r.Emit(Event{"P", Constructed})
	r.Emit(Event{"D", Constructed})

	require.Len(t, r.Events(), 3)
	assert.Equal(t, 2, r.Count(Event{"D", Constructed}))
	assert.Equal(t, 0, r.Count(Event{"D", Destructed}))
	assert.Equal(t, []string{"D constructor called", "P Constructor", "D constructor called"}, r.Lines())

	// Events returns a copy.
	events := r.Events()
	events[0] = Event{"X", Scanning}
	assert.Equal(t, Event{"D", Constructed}, r.Events()[0])
}

func TestTeeAndWriter(t *testing.T) {
	var buf bytes.Buffer
	r := &Recorder{}
	var seen []Kind
	tr := Tee(WriterTracer{&buf}, r, TracerFunc(func(e Event) { seen = append(seen, e.Kind) }))

	tr.Emit(Event{"S", Scanning})
	tr.Emit(Event{"S", Destructed})

	assert.Equal(t, "Scanning...\nS destructor called\n", buf.String())
	assert.Len(t, r.Events(), 2)
	assert.Equal(t, []Kind{Scanning, Destructed}, seen)
}

func TestScopeReleasesInReverse(t *testing.T) {
	var log []string
	s := NewScope()
	s.Defer(named{"first", &log})
	s.Defer(named{"second", &log})
	s.Defer(named{"third", &log})
	require.Equal(t, 3, s.Len())

	s.Close()
	assert.Equal(t, []string{"third", "second", "first"}, log)
	assert.Equal(t, 0, s.Len())

	s.Close()
	assert.Len(t, log, 3)
}

func TestScopeDeferAfterClosePanics(t *testing.T) {
	var log []string
	s := NewScope()
	s.Close()
	assert.Panics(t, func() { s.Defer(named{"late", &log}) })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "destroyed", Destroyed.String())
}
