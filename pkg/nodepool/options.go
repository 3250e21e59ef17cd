package nodepool

import "go.uber.org/zap"

// Option configures a pool at construction time.
type Option[T any] func(*Pool[T])

// WithLogger attaches a structured logger to the pool. Growth and clear
// events are logged at debug level. Without this option the pool logs
// nothing.
func WithLogger[T any](log *zap.Logger) Option[T] {
	return func(p *Pool[T]) {
		if log != nil {
			p.log = log
		}
	}
}
