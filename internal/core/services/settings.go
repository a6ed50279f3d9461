package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyFormatPrecision  = "format.precision"
	KeyEngineReorder    = "engine.reorder"
	KeyEnginePruneZero  = "engine.prune_zero"
	KeyRunWorkers       = "run.workers"
	KeyRunOutput        = "run.output"
	KeyWatchMinInterval = "watch.min_interval_ms"
)

var settingKeys = []string{
	KeyFormatPrecision,
	KeyEngineReorder,
	KeyEnginePruneZero,
	KeyRunWorkers,
	KeyRunOutput,
	KeyWatchMinInterval,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing values fall back to defaults. A stored value that fails
// validation is an error; Set can still overwrite it.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Format: domain.FormatSettings{
			Precision: s.getInt(KeyFormatPrecision, defaults.Format.Precision),
		},
		Engine: domain.EngineSettings{
			Reorder:   s.getBool(KeyEngineReorder, defaults.Engine.Reorder),
			PruneZero: s.getBool(KeyEnginePruneZero, defaults.Engine.PruneZero),
		},
		Run: domain.RunSettings{
			Workers: s.getInt(KeyRunWorkers, defaults.Run.Workers),
			Output:  s.getOutput(defaults.Run.Output),
		},
		Watch: domain.WatchSettings{
			MinInterval: time.Duration(s.getInt(KeyWatchMinInterval,
				int(defaults.Watch.MinInterval/time.Millisecond))) * time.Millisecond,
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("stored settings in %s: %w", s.configStore.Path(), err)
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyFormatPrecision, settings.Format.Precision},
		{KeyEngineReorder, settings.Engine.Reorder},
		{KeyEnginePruneZero, settings.Engine.PruneZero},
		{KeyRunWorkers, settings.Run.Workers},
		{KeyRunOutput, settings.Run.Output.String()},
		{KeyWatchMinInterval, int(settings.Watch.MinInterval / time.Millisecond)},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set updates a single setting by key and persists only that key.
// The new value is validated on its own, so a bad value stored under
// another key never blocks the update.
func (s *SettingsService) Set(key, value string) error {
	candidate := domain.DefaultAppSettings()

	var (
		stored any
		err    error
	)
	value = strings.TrimSpace(value)
	switch key {
	case KeyFormatPrecision:
		candidate.Format.Precision, err = parseInt(key, value)
		stored = candidate.Format.Precision
	case KeyEngineReorder:
		candidate.Engine.Reorder, err = parseBool(key, value)
		stored = candidate.Engine.Reorder
	case KeyEnginePruneZero:
		candidate.Engine.PruneZero, err = parseBool(key, value)
		stored = candidate.Engine.PruneZero
	case KeyRunWorkers:
		candidate.Run.Workers, err = parseInt(key, value)
		stored = candidate.Run.Workers
	case KeyRunOutput:
		candidate.Run.Output = domain.OutputFormat(strings.ToLower(value))
		stored = candidate.Run.Output.String()
	case KeyWatchMinInterval:
		var ms int
		ms, err = parseInt(key, value)
		candidate.Watch.MinInterval = time.Duration(ms) * time.Millisecond
		stored = ms
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}
	if err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored setting so it reads as its default again.
// An empty key resets every setting.
func (s *SettingsService) Reset(key string) error {
	keys := settingKeys
	if key != "" {
		if !slices.Contains(settingKeys, key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
		}
		keys = []string{key}
	}

	for _, k := range keys {
		if err := s.configStore.Delete(k); err != nil {
			return fmt.Errorf("reset %s: %w", k, err)
		}
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getOutput returns the stored format as is; Validate rejects unknown ones.
func (s *SettingsService) getOutput(defaultVal domain.OutputFormat) domain.OutputFormat {
	if _, exists := s.configStore.Get(KeyRunOutput); !exists {
		return defaultVal
	}
	return domain.OutputFormat(s.configStore.GetString(KeyRunOutput))
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer, got %q", domain.ErrInvalidInput, key, value)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
	}
	return b, nil
}
