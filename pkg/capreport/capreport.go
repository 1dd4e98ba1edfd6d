// Package capreport reports which named types of a Go package satisfy a set
// of capability interfaces, and through which receiver.
package capreport

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Capability is one interface a type satisfies.
type Capability struct {
	Interface string
	// Addressable is true when only the pointer type satisfies Interface.
	Addressable bool
}

func (c Capability) describe(typeName string) string {
	if c.Addressable {
		return fmt.Sprintf("%s (*%s)", c.Interface, typeName)
	}
	return fmt.Sprintf("%s (%s)", c.Interface, typeName)
}

type Entry struct {
	Type         string
	Capabilities []Capability
}

// Has reports whether e satisfies iface through any receiver.
func (e Entry) Has(iface string) bool {
	for _, c := range e.Capabilities {
		if c.Interface == iface {
			return true
		}
	}
	return false
}

type Report struct {
	Package    string
	Interfaces []string
	Entries    []Entry
}

// Lookup returns the entry for typeName, if it satisfies anything.
func (r *Report) Lookup(typeName string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Type == typeName {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "package %s: %s\n", r.Package, strings.Join(r.Interfaces, ", "))
	for _, e := range r.Entries {
		descs := make([]string, len(e.Capabilities))
		for i, c := range e.Capabilities {
			descs[i] = c.describe(e.Type)
		}
		fmt.Fprintf(&sb, "  %s: %s\n", e.Type, strings.Join(descs, ", "))
	}
	return sb.String()
}

// Inspect checks every named non-interface type declared in pkg against the
// interfaces named by ifaces, which must also be declared in pkg.
func Inspect(pkg *types.Package, ifaces []string) (*Report, error) {
	if len(ifaces) == 0 {
		return nil, fmt.Errorf("no interfaces given")
	}
	scope := pkg.Scope()

	targets := make([]*types.Interface, len(ifaces))
	for i, name := range ifaces {
		obj := scope.Lookup(name)
		if obj == nil {
			return nil, fmt.Errorf("interface %q not found in package %q", name, pkg.Path())
		}
		iface, ok := obj.Type().Underlying().(*types.Interface)
		if !ok {
			return nil, fmt.Errorf("%q in package %q is not an interface", name, pkg.Path())
		}
		targets[i] = iface
	}

	report := &Report{Package: pkg.Path(), Interfaces: ifaces}
	// Names is sorted, so the report is stable.
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if types.IsInterface(tn.Type()) {
			continue
		}
		var caps []Capability
		for i, iface := range targets {
			switch {
			case types.Implements(tn.Type(), iface):
				caps = append(caps, Capability{Interface: ifaces[i]})
			case types.Implements(types.NewPointer(tn.Type()), iface):
				caps = append(caps, Capability{Interface: ifaces[i], Addressable: true})
			}
		}
		if len(caps) > 0 {
			report.Entries = append(report.Entries, Entry{Type: name, Capabilities: caps})
		}
	}
	return report, nil
}

// Load type-checks the single package matched by pattern.
func Load(dir, pattern string) (*types.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedTypes | packages.NeedName | packages.NeedSyntax | packages.NeedImports,
		Dir:  dir,
	}, pattern)
	if err != nil {
		return nil, fmt.Errorf("error loading pkg %q: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, need exactly one", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("error loading pkg %q: %v", pattern, pkg.Errors[0])
	}
	return pkg.Types, nil
}
