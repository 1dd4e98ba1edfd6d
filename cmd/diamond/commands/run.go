package commands

import (
	"github.com/euank/diamond/internal/logger"
	"github.com/euank/diamond/pkg/diamond"
	"github.com/euank/diamond/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var ancestryFlag string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the construction, dispatch and destruction trace",
	Long: `Build one P, one S and one PS, call print on P and PS, scan on S and PS,
then release all three in reverse order. Each event is printed on its own
line to stdout.

Examples:
  # One D shared by both halves of PS (default)
  diamond run

  # Give P and S their own D each, as naive multiple inheritance does
  diamond run --ancestry duplicated`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ancestryFlag, "ancestry", "", "shared or duplicated (overrides config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	name := cfg.Ancestry
	if ancestryFlag != "" {
		name = ancestryFlag
	}
	ancestry, err := diamond.ParseAncestry(name)
	if err != nil {
		return err
	}

	log := logger.With("ancestry", ancestry.String())
	tr := lifecycle.Tee(
		lifecycle.WriterTracer{W: cmd.OutOrStdout()},
		lifecycle.TracerFunc(func(e lifecycle.Event) {
			log.Debug("lifecycle event", "type", e.Type, "kind", e.Kind.String())
		}),
	)
	diamond.Run(tr, ancestry)
	return nil
}
