// Command polycalc adds, subtracts and multiplies polynomials read from
// three-line records.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/config/file"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/storage/memory"
	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driving/cli"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driving"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/services"
	"github.com/StevenWojsnis/polynomialCalculator/internal/operations"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore := openConfigStore(os.Stderr)
	registry := operations.DefaultRegistry()

	cli.SetVersion(version)
	cli.SetServices(
		services.NewSettingsService(configStore),
		func(settings domain.AppSettings) driving.CalculatorService {
			return services.NewCalculatorService(registry, settings)
		},
	)

	// cobra prints command errors itself.
	return cli.Execute(ctx)
}

// openConfigStore opens the config file store. When the config directory
// cannot be used, settings are kept in memory for this invocation and a
// warning is written to w.
func openConfigStore(w io.Writer) driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(w, "polycalc: warning: %v; settings will not be saved\n", err)
		return memory.NewConfigStore()
	}
	return store
}
