// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// CalculatorService evaluates records and runs them from a RecordSource
// into a ResultSink. SettingsService maps the ConfigStore's dot-notation
// keys onto domain.AppSettings.
package services
