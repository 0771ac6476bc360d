// Package logging centralizes logger construction so every component logs
// JSON with the same fields. Handlers derive request-scoped loggers via
// WithRequestID; background code uses the process default.
package logging
