package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/sink"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

var evalCmd = &cobra.Command{
	Use:   "eval <first> <second> <operation>",
	Short: "Evaluate a single record",
	Long: `Evaluate one record given as three arguments.

Quote each polynomial so its pairs stay together.

Examples:
  polycalc eval "2 2 4 1" "1 0" add
  polycalc eval "1 1 1 0" "1 1 -1 0" multiply --precision 1`,
	Args: cobra.ExactArgs(3),
	RunE: runEval,
}

func init() {
	addEngineFlags(evalCmd)
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	calc, err := newCalculator(settings)
	if err != nil {
		return err
	}

	ev := calc.Evaluate(cmd.Context(), domain.Record{
		First:     args[0],
		Second:    args[1],
		Operation: args[2],
	})

	out := cmd.OutOrStdout()
	styled := settings.Run.Output == domain.OutputText && isTerminal(out)
	snk, closer, err := sink.New(settings.Run.Output, out, styled)
	if err != nil {
		return err
	}
	return errors.Join(snk.Write(cmd.Context(), ev), closer.Close())
}
