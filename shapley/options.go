package shapley

import "log/slog"

const panicNilLogger = "shapley: WithLogger: logger must be non-nil"

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger routes debug traces of construction, fits and scoring to l.
// The default logger discards everything. Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(e *Engine) { e.log = l }
}
