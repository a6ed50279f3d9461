package mcp

import (
	"context"

	"github.com/StevenWojsnis/polynomialCalculator/internal/core/domain"
	"github.com/StevenWojsnis/polynomialCalculator/internal/core/ports/driven"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	evaluation domain.Evaluation
	record     domain.Record
	operations []domain.Operation
	err        error
}

func (m *mockCalculatorService) Operations() []domain.Operation { return m.operations }

func (m *mockCalculatorService) Evaluate(_ context.Context, record domain.Record) domain.Evaluation {
	m.record = record
	return m.evaluation
}

func (m *mockCalculatorService) Run(
	_ context.Context,
	_ driven.RecordSource,
	_ driven.ResultSink,
	_ domain.RunOptions,
) (*domain.RunSummary, error) {
	return &domain.RunSummary{}, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) { return m.settings, m.err }
func (m *mockSettingsService) Save(_ *domain.AppSettings) error  { return m.err }
func (m *mockSettingsService) Set(_, _ string) error             { return m.err }
func (m *mockSettingsService) Reset(_ string) error              { return m.err }
func (m *mockSettingsService) Keys() []string                    { return nil }
func (m *mockSettingsService) GetDefaults() domain.AppSettings   { return domain.DefaultAppSettings() }
