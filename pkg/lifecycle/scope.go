package lifecycle

// State is one of the two states an object can be in.
type State int

const (
	Alive State = iota
	Destroyed
)

func (s State) String() string {
	if s == Destroyed {
		return "destroyed"
	}
	return "alive"
}

// Releaser is anything a Scope can tear down.
type Releaser interface {
	Destroy()
}

// Scope releases registered objects in reverse registration order when
// closed, the way automatic variables leave a block.
type Scope struct {
	held   []Releaser
	closed bool
}

// NewScope returns an open, empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Defer registers r for release and returns it so construction and
// registration can happen on one line.
func (s *Scope) Defer(r Releaser) Releaser {
	if s.closed {
		panic("lifecycle: Defer on closed scope")
	}
	s.held = append(s.held, r)
	return r
}

// Len reports how many objects are still held.
func (s *Scope) Len() int {
	return len(s.held)
}

// Close destroys every held object, last registered first. Subsequent calls
// do nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.held) - 1; i >= 0; i-- {
		s.held[i].Destroy()
	}
	s.held = nil
}
