// Package cli provides the cobra command tree for polycalc.
// It is a driving adapter: commands translate flags and arguments into
// calls on the driving ports set with SetServices.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driving"
	"github.com/StevenWojsnis/polynomialCalculator/internal/logger"
)

// CalculatorFactory builds a calculator for the effective settings of one
// command invocation.
type CalculatorFactory func(settings domain.AppSettings) driving.CalculatorService

var (
	// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
	version = "dev"

	verbose bool

	settingsService   driving.SettingsService
	calculatorFactory CalculatorFactory
)

// errCalculatorNotConfigured is returned when SetServices was never called.
var errCalculatorNotConfigured = errors.New("calculator service not configured")

var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "Add, subtract and multiply polynomials",
	Long: `polycalc evaluates polynomial arithmetic read from a file.

Every record is three lines: the first polynomial, the second polynomial
and an operation keyword (add, subtract or multiply). A polynomial is a
list of coefficient/exponent pairs, so "3 2 -1 0" is 3x^2 - 1.

Run "polycalc run" to evaluate project1.txt in the current directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServices wires the driving ports used by every command.
func SetServices(settings driving.SettingsService, factory CalculatorFactory) {
	settingsService = settings
	calculatorFactory = factory
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings returns stored settings, or defaults when no settings
// service is wired.
func loadSettings() (domain.AppSettings, error) {
	if settingsService == nil {
		return domain.DefaultAppSettings(), nil
	}
	s, err := settingsService.Get()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return *s, nil
}

func newCalculator(settings domain.AppSettings) (driving.CalculatorService, error) {
	if calculatorFactory == nil {
		return nil, errCalculatorNotConfigured
	}
	return calculatorFactory(settings), nil
}
