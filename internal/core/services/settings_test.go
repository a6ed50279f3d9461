package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StevenWojsnis/polynomialCalculator/internal/adapters/driven/storage/memory"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("format.precision", int64(0))
	_ = store.Set("engine.reorder", false)
	_ = store.Set("engine.prune_zero", true)
	_ = store.Set("run.workers", int64(4))
	_ = store.Set("run.output", "json")
	_ = store.Set("watch.min_interval_ms", int64(50))

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 0, settings.Format.Precision)
	assert.False(t, settings.Engine.Reorder)
	assert.True(t, settings.Engine.PruneZero)
	assert.Equal(t, 4, settings.Run.Workers)
	assert.Equal(t, domain.OutputJSON, settings.Run.Output)
	assert.Equal(t, 50*time.Millisecond, settings.Watch.MinInterval)
}

func TestSettingsService_Get_InvalidStoredValue(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"run.workers", 0},
		{"format.precision", 40},
		{"run.output", "xml"},
		{"watch.min_interval_ms", -5},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := seededStore(t, map[string]any{tt.key: tt.value})

			_, err := NewSettingsService(store).Get()

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Set_RepairsInvalidStoredValues(t *testing.T) {
	store := seededStore(t, map[string]any{
		"run.workers":      0,
		"format.precision": 40,
		"run.output":       "xml",
	})
	service := NewSettingsService(store)

	require.NoError(t, service.Set("run.workers", "2"))
	_, err := service.Get()
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, service.Set("format.precision", "2"))
	require.NoError(t, service.Set("run.output", "yaml"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, settings.Run.Workers)
	assert.Equal(t, 2, settings.Format.Precision)
	assert.Equal(t, domain.OutputYAML, settings.Run.Output)
}

func TestSettingsService_Set_WritesOnlyThatKey(t *testing.T) {
	store := memory.NewConfigStore()

	require.NoError(t, NewSettingsService(store).Set("engine.prune_zero", "true"))

	assert.True(t, store.GetBool("engine.prune_zero"))
	for _, key := range []string{"format.precision", "engine.reorder", "run.workers", "run.output", "watch.min_interval_ms"} {
		_, ok := store.Get(key)
		assert.False(t, ok, key)
	}
}

func TestSettingsService_Reset(t *testing.T) {
	store := seededStore(t, map[string]any{
		"run.workers": 0,
		"run.output":  "json",
	})
	service := NewSettingsService(store)

	require.NoError(t, service.Reset("run.workers"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().Run.Workers, settings.Run.Workers)
	assert.Equal(t, domain.OutputJSON, settings.Run.Output)
}

func TestSettingsService_Reset_All(t *testing.T) {
	store := seededStore(t, map[string]any{
		"format.precision": 40,
		"engine.reorder":   false,
		"run.output":       "xml",
	})
	service := NewSettingsService(store)

	require.NoError(t, service.Reset(""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Reset_UnknownKey(t *testing.T) {
	err := NewSettingsService(memory.NewConfigStore()).Reset("engine.turbo")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func seededStore(t *testing.T, values map[string]any) *memory.ConfigStore {
	t.Helper()
	store := memory.NewConfigStore()
	for key, value := range values {
		require.NoError(t, store.Set(key, value))
	}
	return store
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Format.Precision = 2
	settings.Run.Output = domain.OutputYAML
	settings.Watch.MinInterval = time.Second

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, 2, store.GetInt("format.precision"))
	assert.Equal(t, "yaml", store.GetString("run.output"))
	assert.Equal(t, 1000, store.GetInt("watch.min_interval_ms"))
	assert.True(t, store.GetBool("engine.reorder"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	store := memory.NewConfigStore()
	settings := domain.DefaultAppSettings()
	settings.Run.Workers = -1

	err := NewSettingsService(store).Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, exists := store.Get("run.workers")
	assert.False(t, exists)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"format.precision", "3", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 3, s.Format.Precision)
		}},
		{"engine.reorder", "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.Engine.Reorder)
		}},
		{"engine.prune_zero", " true ", func(t *testing.T, s *domain.AppSettings) {
			assert.True(t, s.Engine.PruneZero)
		}},
		{"run.workers", "8", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 8, s.Run.Workers)
		}},
		{"run.output", "JSON", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.OutputJSON, s.Run.Output)
		}},
		{"watch.min_interval_ms", "0", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, time.Duration(0), s.Watch.MinInterval)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			got, err := service.Get()
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"unknown key", "engine.turbo", "on", domain.ErrNotFound},
		{"not an int", "run.workers", "many", domain.ErrInvalidInput},
		{"not a bool", "engine.reorder", "maybe", domain.ErrInvalidInput},
		{"out of range", "format.precision", "40", domain.ErrInvalidInput},
		{"unknown output", "run.output", "csv", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSettingsService(memory.NewConfigStore()).Set(tt.key, tt.value)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{
		"format.precision",
		"engine.reorder",
		"engine.prune_zero",
		"run.workers",
		"run.output",
		"watch.min_interval_ms",
	}, service.Keys())
}

func TestSettingsService_GetDefaults(t *testing.T) {
	assert.Equal(t, domain.DefaultAppSettings(), NewSettingsService(memory.NewConfigStore()).GetDefaults())
}
