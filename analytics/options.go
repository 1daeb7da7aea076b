package analytics

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for report outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l.Named("analytics")
		}
	}
}

// WithObserver sets the report observer, typically the metrics recorder.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}
