package nodepool

import (
	"github.com/ajitpratap0/nodepool/pkg/errors"
)

// Config describes pool sizing. It is the file-loadable counterpart to the
// New constructor: where New silently clamps non-positive sizes to safe
// minimums, Config.Validate rejects them, so misconfiguration surfaces as an
// error instead of being papered over. Pick whichever policy fits the
// caller; both are deliberate.
type Config struct {
	// Name identifies the pool instance, e.g. in metrics labels.
	Name string `yaml:"name" json:"name"`

	// InitialSize is the number of nodes allocated at construction.
	InitialSize int `yaml:"initial_size" json:"initial_size"`

	// IncrementSize is the number of nodes added per growth event.
	IncrementSize int `yaml:"increment_size" json:"increment_size"`
}

// DefaultConfig returns a config with the library's default sizing.
func DefaultConfig() Config {
	return Config{
		InitialSize:   DefaultInitialSize,
		IncrementSize: DefaultIncrement,
	}
}

// Validate checks the configuration for non-positive sizing. It returns a
// typed validation error naming the offending field, or nil.
func (c Config) Validate() error {
	if c.InitialSize < 1 {
		return errors.New(errors.ErrorTypeValidation, "initial_size must be at least 1").
			WithDetail("initial_size", c.InitialSize)
	}
	if c.IncrementSize < 1 {
		return errors.New(errors.ErrorTypeValidation, "increment_size must be at least 1").
			WithDetail("increment_size", c.IncrementSize)
	}
	return nil
}

// NewFromConfig builds a pool from a validated configuration. Unlike New it
// refuses non-positive sizes rather than clamping them.
func NewFromConfig[T any](cfg Config, opts ...Option[T]) (*Pool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid pool configuration")
	}
	return New(cfg.InitialSize, cfg.IncrementSize, opts...), nil
}
