package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

// Flag names shared by the evaluating commands.
const (
	flagOutput    = "output"
	flagWorkers   = "workers"
	flagPrecision = "precision"
	flagPruneZero = "prune-zero"
	flagNoReorder = "no-reorder"
	flagStrict    = "strict"
)

// addEngineFlags registers flags that override stored settings for one
// invocation.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOutput, "o", "", "output format: "+outputFormatList())
	cmd.Flags().Int(flagPrecision, 0, "decimal places in coefficients (-1 = shortest)")
	cmd.Flags().Bool(flagPruneZero, false, "drop zero-coefficient terms from results")
	cmd.Flags().Bool(flagNoReorder, false, "keep operands in input order")
}

// outputFormatList renders the accepted formats as "a, b or c".
func outputFormatList() string {
	formats := domain.AllOutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// resolveSettings loads stored settings and applies any flags the user set.
func resolveSettings(cmd *cobra.Command) (domain.AppSettings, error) {
	settings, err := loadSettings()
	if err != nil {
		return settings, err
	}

	flags := cmd.Flags()
	if f := flags.Lookup(flagOutput); f != nil && f.Changed {
		settings.Run.Output = domain.OutputFormat(f.Value.String())
	}
	if flags.Changed(flagWorkers) {
		if settings.Run.Workers, err = flags.GetInt(flagWorkers); err != nil {
			return settings, err
		}
	}
	if flags.Changed(flagPrecision) {
		if settings.Format.Precision, err = flags.GetInt(flagPrecision); err != nil {
			return settings, err
		}
	}
	if flags.Changed(flagPruneZero) {
		if settings.Engine.PruneZero, err = flags.GetBool(flagPruneZero); err != nil {
			return settings, err
		}
	}
	if flags.Changed(flagNoReorder) {
		noReorder, err := flags.GetBool(flagNoReorder)
		if err != nil {
			return settings, err
		}
		settings.Engine.Reorder = !noReorder
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid options: %w", err)
	}
	return settings, nil
}

// isTerminal reports whether w is a terminal, which enables styled output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}
