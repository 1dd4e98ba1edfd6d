package example

import (
	"fmt"
	"io"

	"github.com/euank/diamond/pkg/diamond"
	"github.com/euank/diamond/pkg/lifecycle"
)

func newAnnounced(w io.Writer, r lifecycle.Releaser) lifecycle.Releaser {
	return (&announcedReleaser{r, w}).propagateCapabilities()
}

// announcedReleaser reports each release before handing it to the wrapped
// value.
type announcedReleaser struct {
	lifecycle.Releaser
	w io.Writer
}

func (a *announcedReleaser) Destroy() {
	fmt.Fprintf(a.w, "releasing %T\n", a.Releaser)
	a.Releaser.Destroy()
}

// propagateCapabilities returns a value that has exactly the capabilities
// the wrapped value has, so the wrapper can still be passed to PrintTask or
// ScanTask whenever the wrapped value could.
func (a *announcedReleaser) propagateCapabilities() lifecycle.Releaser {
	_, ok0 := a.Releaser.(diamond.Printer)
	_, ok1 := a.Releaser.(diamond.Scanner)
	switch {
	case ok0 && ok1:
		return struct {
			lifecycle.Releaser
			diamond.Printer
			diamond.Scanner
		}{a, a, a}
	case !ok0 && ok1:
		return struct {
			lifecycle.Releaser
			diamond.Scanner
		}{a, a}
	case ok0 && !ok1:
		return struct {
			lifecycle.Releaser
			diamond.Printer
		}{a, a}
	default:
		return struct {
			lifecycle.Releaser
		}{a}
	}
}

func (a *announcedReleaser) Print() {
	a.Releaser.(diamond.Printer).Print()
}

func (a *announcedReleaser) Scan() {
	a.Releaser.(diamond.Scanner).Scan()
}
