package commands

import (
	"fmt"
	"strings"

	"github.com/euank/diamond/internal/logger"
	"github.com/euank/diamond/pkg/capreport"
	"github.com/spf13/cobra"
)

const defaultInspectPackage = "github.com/euank/diamond/pkg/diamond"

var (
	inspectIfaces string
	inspectDir    string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [package]",
	Short: "Show which types in a package satisfy the capability interfaces",
	Long: `Type-check a Go package and list every named type that satisfies one of
the given interfaces, along with the receiver (T or *T) it needs.

Examples:
  # Report on the diamond package itself
  diamond inspect

  # Another package, other interfaces
  diamond inspect ./mypkg --interfaces Reader,Closer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectIfaces, "interfaces", "Printer,Scanner", "comma-separated interfaces declared in the package")
	inspectCmd.Flags().StringVar(&inspectDir, "dir", "", "directory to resolve the package from (default: current directory)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	pattern := defaultInspectPackage
	if len(args) == 1 {
		pattern = args[0]
	}
	ifaces := strings.Split(inspectIfaces, ",")

	logger.Debug("loading package", "pattern", pattern, "interfaces", ifaces)
	pkg, err := capreport.Load(inspectDir, pattern)
	if err != nil {
		return err
	}
	report, err := capreport.Inspect(pkg, ifaces)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.String())
	return nil
}
