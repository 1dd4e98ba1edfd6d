// Package diamond builds the D/P/S/PS diamond out of embedded structs.
//
// P and S each extend D. PS embeds both, so it satisfies Printer and Scanner
// at once and can be handed to either PrintTask or ScanTask. How many D
// values sit under a PS is decided by its Ancestry.
package diamond

import (
	"fmt"
	"strings"

	"github.com/euank/diamond/pkg/lifecycle"
)

const (
	TypeD  = "D"
	TypeP  = "P"
	TypeS  = "S"
	TypePS = "PS"
)

// Ancestry selects how many D values back a PS.
type Ancestry int

const (
	// Shared builds one D and layers P and S over it.
	Shared Ancestry = iota
	// Duplicated gives P and S their own D each, as naive multiple
	// inheritance does.
	Duplicated
)

func (a Ancestry) String() string {
	switch a {
	case Shared:
		return "shared"
	case Duplicated:
		return "duplicated"
	default:
		return fmt.Sprintf("Ancestry(%d)", int(a))
	}
}

// ParseAncestry parses "shared" or "duplicated", ignoring case.
func ParseAncestry(s string) (Ancestry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "":
		return Shared, nil
	case "duplicated":
		return Duplicated, nil
	}
	return 0, fmt.Errorf("unknown ancestry %q (want shared or duplicated)", s)
}

// D is the common ancestor. It only announces its own construction and
// destruction.
type D struct {
	tr    lifecycle.Tracer
	state lifecycle.State
}

func NewD(tr lifecycle.Tracer) *D {
	d := &D{tr: tr}
	d.emit(TypeD, lifecycle.Constructed)
	return d
}

func (d *D) emit(typ string, kind lifecycle.Kind) {
	d.tr.Emit(lifecycle.Event{Type: typ, Kind: kind})
}

func (d *D) State() lifecycle.State { return d.state }

func (d *D) Destroy() {
	if d.state == lifecycle.Destroyed {
		return
	}
	d.state = lifecycle.Destroyed
	d.emit(TypeD, lifecycle.Destructed)
}

// P adds the print capability on top of a D.
type P struct {
	*D
	ownsD bool
	state lifecycle.State
}

// NewP constructs a D and then a P over it.
func NewP(tr lifecycle.Tracer) *P {
	return newP(NewD(tr), true)
}

func newP(d *D, owns bool) *P {
	p := &P{D: d, ownsD: owns}
	d.emit(TypeP, lifecycle.Constructed)
	return p
}

func (p *P) Print() {
	p.emit(TypeP, lifecycle.Printing)
}

func (p *P) State() lifecycle.State { return p.state }

// Destroy tears down P and then, if P owns it, its D.
func (p *P) Destroy() {
	if p.state == lifecycle.Destroyed {
		return
	}
	p.state = lifecycle.Destroyed
	p.emit(TypeP, lifecycle.Destructed)
	if p.ownsD {
		p.D.Destroy()
	}
}

// S adds the scan capability on top of a D.
type S struct {
	*D
	ownsD bool
	state lifecycle.State
}

// NewS constructs a D and then an S over it.
func NewS(tr lifecycle.Tracer) *S {
	return newS(NewD(tr), true)
}

func newS(d *D, owns bool) *S {
	s := &S{D: d, ownsD: owns}
	d.emit(TypeS, lifecycle.Constructed)
	return s
}

func (s *S) Scan() {
	s.emit(TypeS, lifecycle.Scanning)
}

func (s *S) State() lifecycle.State { return s.state }

// Destroy tears down S and then, if S owns it, its D.
func (s *S) Destroy() {
	if s.state == lifecycle.Destroyed {
		return
	}
	s.state = lifecycle.Destroyed
	s.emit(TypeS, lifecycle.Destructed)
	if s.ownsD {
		s.D.Destroy()
	}
}

// PS is the join point of the diamond. Print is promoted from P and Scan
// from S.
type PS struct {
	*P
	*S
	ancestry Ancestry
	// shared is set only for Shared ancestry; P and S both point at it.
	shared *D
	state  lifecycle.State
}

// NewPS constructs the ancestors of a PS in declaration order (P before S)
// and then PS itself.
func NewPS(tr lifecycle.Tracer, ancestry Ancestry) *PS {
	ps := &PS{ancestry: ancestry}
	switch ancestry {
	case Duplicated:
		ps.P = NewP(tr)
		ps.S = NewS(tr)
	default:
		ps.ancestry = Shared
		ps.shared = NewD(tr)
		ps.P = newP(ps.shared, false)
		ps.S = newS(ps.shared, false)
	}
	ps.P.emit(TypePS, lifecycle.Constructed)
	return ps
}

func (ps *PS) Ancestry() Ancestry { return ps.ancestry }

// Ancestors returns the distinct D values underneath ps.
func (ps *PS) Ancestors() []*D {
	if ps.shared != nil {
		return []*D{ps.shared}
	}
	return []*D{ps.P.D, ps.S.D}
}

func (ps *PS) State() lifecycle.State { return ps.state }

// Destroy runs in exact reverse of NewPS: PS, then S, then P, then the
// shared D if there is one.
func (ps *PS) Destroy() {
	if ps.state == lifecycle.Destroyed {
		return
	}
	ps.state = lifecycle.Destroyed
	ps.P.emit(TypePS, lifecycle.Destructed)
	ps.S.Destroy()
	ps.P.Destroy()
	if ps.shared != nil {
		ps.shared.Destroy()
	}
}
