package diamond

import "github.com/euank/diamond/pkg/lifecycle"

// Run builds a P, an S and a PS, dispatches print and scan through the
// capability interfaces, and releases all three in reverse order.
func Run(tr lifecycle.Tracer, ancestry Ancestry) {
	scope := lifecycle.NewScope()
	defer scope.Close()

	p := NewP(tr)
	scope.Defer(p)
	s := NewS(tr)
	scope.Defer(s)
	ps := NewPS(tr, ancestry)
	scope.Defer(ps)

	PrintTask(p)
	PrintTask(ps)

	ScanTask(s)
	ScanTask(ps)
}

// Expected returns the exact lines Run emits for ancestry.
func Expected(ancestry Ancestry) []string {
	ctor := func(t string) string { return lifecycle.Event{Type: t, Kind: lifecycle.Constructed}.String() }
	dtor := func(t string) string { return lifecycle.Event{Type: t, Kind: lifecycle.Destructed}.String() }

	lines := []string{
		ctor(TypeD), ctor(TypeP),
		ctor(TypeD), ctor(TypeS),
	}
	if ancestry == Duplicated {
		lines = append(lines, ctor(TypeD), ctor(TypeP), ctor(TypeD), ctor(TypeS))
	} else {
		lines = append(lines, ctor(TypeD), ctor(TypeP), ctor(TypeS))
	}
	lines = append(lines, ctor(TypePS),
		"Printing...", "Printing...",
		"Scanning...", "Scanning...",
		dtor(TypePS),
	)
	if ancestry == Duplicated {
		lines = append(lines, dtor(TypeS), dtor(TypeD), dtor(TypeP), dtor(TypeD))
	} else {
		lines = append(lines, dtor(TypeS), dtor(TypeP), dtor(TypeD))
	}
	return append(lines,
		dtor(TypeS), dtor(TypeD),
		dtor(TypeP), dtor(TypeD),
	)
}
