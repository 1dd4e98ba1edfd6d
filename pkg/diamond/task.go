package diamond

type Printer interface {
	Print()
}

type Scanner interface {
	Scan()
}

// PrintScanner is what a PS looks like to a caller that needs both.
type PrintScanner interface {
	Printer
	Scanner
}

var (
	_ Printer      = (*P)(nil)
	_ Scanner      = (*S)(nil)
	_ PrintScanner = (*PS)(nil)
)

// PrintTask calls Print on p. p must not be nil.
func PrintTask(p Printer) {
	p.Print()
}

// ScanTask calls Scan on s. s must not be nil.
func ScanTask(s Scanner) {
	s.Scan()
}
