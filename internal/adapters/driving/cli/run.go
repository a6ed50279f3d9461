package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/sink"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/source"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate every record in a file",
	Long: `Evaluate every three-line record in a file and print the results.

The file defaults to project1.txt in the current directory. Use "-" to read
from standard input.

Examples:
  polycalc run
  polycalc run problems.txt --precision 2
  cat problems.txt | polycalc run - -o json
  polycalc run problems.txt --strict`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	addEngineFlags(runCmd)
	runCmd.Flags().IntP(flagWorkers, "w", 0, "records evaluated concurrently")
	runCmd.Flags().Bool(flagStrict, false, "exit with an error when the input ends part way through a record")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	path := source.DefaultFile
	if len(args) == 1 {
		path = args[0]
	}

	src, err := source.OpenFile(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer src.Close()

	strict, err := cmd.Flags().GetBool(flagStrict)
	if err != nil {
		return err
	}

	summary, err := evaluateSource(cmd.Context(), cmd.OutOrStdout(), src, settings)
	if err != nil {
		return err
	}
	if strict && summary.Incomplete {
		return fmt.Errorf("%w: %s ends after record %d", domain.ErrIncompleteRecord, path, summary.Records)
	}
	return nil
}

// evaluateSource runs every record in src and writes the results to w in
// the configured output format.
func evaluateSource(
	ctx context.Context,
	w io.Writer,
	src driven.RecordSource,
	settings domain.AppSettings,
) (*domain.RunSummary, error) {
	calc, err := newCalculator(settings)
	if err != nil {
		return nil, err
	}

	styled := settings.Run.Output == domain.OutputText && isTerminal(w)
	snk, closer, err := sink.New(settings.Run.Output, w, styled)
	if err != nil {
		return nil, err
	}

	summary, err := calc.Run(ctx, src, snk, domain.RunOptions{Workers: settings.Run.Workers})
	return summary, errors.Join(err, closer.Close())
}
