// Package instrument wires OpenTelemetry tracing, metrics and logs, and
// installs the process-wide slog logger (JSON to stdout, masked fields,
// correlation ID on every record).
package instrument
