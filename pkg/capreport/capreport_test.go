package capreport

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `package shapes

type Printer interface{ Print() }
type Scanner interface{ Scan() }

type D struct{}

type P struct{ *D }

func (p *P) Print() {}

type S struct{ *D }

func (s *S) Scan() {}

type PS struct {
	*P
	*S
}

type byValue struct{}

func (byValue) Print() {}

type notAnInterface int
`

func checkSource(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shapes.go", src, 0)
	require.Nil(t, err)
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("example.com/shapes", fset, []*ast.File{f}, nil)
	require.Nil(t, err)
	return pkg
}

func TestInspect(t *testing.T) {
	report, err := Inspect(checkSource(t), []string{"Printer", "Scanner"})
	require.Nil(t, err)

	p, ok := report.Lookup("P")
	require.True(t, ok)
	assert.Equal(t, []Capability{{Interface: "Printer", Addressable: true}}, p.Capabilities)
	assert.False(t, p.Has("Scanner"))

	// Embedded pointers put both methods in the value method set of PS.
	ps, ok := report.Lookup("PS")
	require.True(t, ok)
	assert.Equal(t, []Capability{{Interface: "Printer"}, {Interface: "Scanner"}}, ps.Capabilities)

	bv, ok := report.Lookup("byValue")
	require.True(t, ok)
	assert.True(t, bv.Has("Printer"))

	_, ok = report.Lookup("D")
	assert.False(t, ok)
	_, ok = report.Lookup("notAnInterface")
	assert.False(t, ok)
	_, ok = report.Lookup("Printer")
	assert.False(t, ok)

	assert.Equal(t, `package example.com/shapes: Printer, Scanner
  P: Printer (*P)
  PS: Printer (PS), Scanner (PS)
  S: Scanner (*S)
  byValue: Printer (byValue)
`, report.String())
}

func TestInspectErrors(t *testing.T) {
	pkg := checkSource(t)

	_, err := Inspect(pkg, nil)
	assert.Error(t, err)

	_, err = Inspect(pkg, []string{"Closer"})
	assert.ErrorContains(t, err, `interface "Closer" not found`)

	_, err = Inspect(pkg, []string{"notAnInterface"})
	assert.ErrorContains(t, err, "is not an interface")
}
