package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{name: "text is valid", format: OutputText, expected: true},
		{name: "json is valid", format: OutputJSON, expected: true},
		{name: "yaml is valid", format: OutputYAML, expected: true},
		{name: "empty string is invalid", format: OutputFormat(""), expected: false},
		{name: "unknown format is invalid", format: OutputFormat("xml"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestOutputFormat_Description(t *testing.T) {
	for _, f := range AllOutputFormats() {
		assert.NotEqual(t, unknownDescription, f.Description(), f.String())
	}
	assert.Equal(t, unknownDescription, OutputFormat("xml").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, -1, s.Format.Precision)
	assert.True(t, s.Engine.Reorder)
	assert.False(t, s.Engine.PruneZero)
	assert.Equal(t, 1, s.Run.Workers)
	assert.Equal(t, OutputText, s.Run.Output)
	assert.Equal(t, 500*time.Millisecond, s.Watch.MinInterval)
	require.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"precision too small", func(s *AppSettings) { s.Format.Precision = -2 }},
		{"precision too large", func(s *AppSettings) { s.Format.Precision = 18 }},
		{"zero workers", func(s *AppSettings) { s.Run.Workers = 0 }},
		{"unknown output", func(s *AppSettings) { s.Run.Output = "csv" }},
		{"negative interval", func(s *AppSettings) { s.Watch.MinInterval = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)

			err := s.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
