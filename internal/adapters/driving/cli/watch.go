package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/source"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-evaluate a file whenever it changes",
	Long: `Evaluate a file, then evaluate it again every time it is saved.

Bursts of file events are coalesced and re-runs are spaced at least
watch.min_interval_ms apart. Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	addEngineFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 0, "minimum time between re-runs (overrides watch.min_interval_ms)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interval") {
		if settings.Watch.MinInterval, err = cmd.Flags().GetDuration("interval"); err != nil {
			return err
		}
	}

	path := source.DefaultFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == source.Stdin {
		return fmt.Errorf("%w: cannot watch standard input", domain.ErrInvalidInput)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file on save keep
	// producing events.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &fileWatcher{
		path:     abs,
		out:      cmd.OutOrStdout(),
		settings: settings,
		events:   watcher.Events,
		errors:   watcher.Errors,
	}
	return w.watch(cmd.Context())
}

// fileWatcher re-evaluates path whenever a matching event arrives.
type fileWatcher struct {
	path     string
	out      io.Writer
	settings domain.AppSettings
	events   <-chan fsnotify.Event
	errors   <-chan error

	// runs counts completed evaluations.
	runs int
}

// watch evaluates the file once, then again after each relevant change,
// until ctx is cancelled or the event channel closes.
func (w *fileWatcher) watch(ctx context.Context) error {
	limit := rate.Inf
	if w.settings.Watch.MinInterval > 0 {
		limit = rate.Every(w.settings.Watch.MinInterval)
	}
	limiter := rate.NewLimiter(limit, 1)

	logger.Section("Watch")
	logger.Debug("Watching %s (min interval %s)", w.path, w.settings.Watch.MinInterval)

	_ = limiter.Allow()
	w.evaluate(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-w.errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case ev, ok := <-w.events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				// Wait fails only when ctx ends before the next slot.
				return nil
			}
			w.drain()
			w.evaluate(ctx)
		}
	}
}

// relevant reports whether ev changes the watched file's content.
func (w *fileWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// drain discards events queued while waiting for the limiter.
func (w *fileWatcher) drain() {
	for {
		select {
		case _, ok := <-w.events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// evaluate runs the file once. Failures are printed and watching continues.
func (w *fileWatcher) evaluate(ctx context.Context) {
	w.runs++
	fmt.Fprintf(w.out, "==> %s (%s) <==\n", filepath.Base(w.path), time.Now().Format(time.TimeOnly))

	src, err := source.OpenFile(w.path, nil)
	if err != nil {
		fmt.Fprintf(w.out, "%v\n\n", err)
		return
	}
	defer src.Close()

	summary, err := evaluateSource(ctx, w.out, src, w.settings)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(w.out, "%v\n\n", err)
		return
	}
	if summary != nil {
		logger.Info("watch: run %d evaluated %d records", w.runs, summary.Records)
	}
}
