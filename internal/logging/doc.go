// Package logging assembles structured slog loggers and formatting helpers used
// across tmdbkit.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so HTTP exchanges can be tagged
// with correlation IDs. The package also provides a no-op logger for library
// callers and tests that do not care about log output.
package logging
