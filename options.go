package pprimes

import "github.com/sirupsen/logrus"

// DefaultWorkers is the worker count used when WithWorkers is not given.
const DefaultWorkers = 2

// MaxBufferValue is the largest max value Find will allocate a result
// buffer for. The buffer is one slot per integer in [0, max], so anything
// beyond this would be a terabyte-scale allocation.
const MaxBufferValue int64 = 1 << 40

// Config contains all configuration options for a search.
type Config struct {
	// Workers is the number of concurrent workers. Must be >= 1.
	// A value of 1 scans the range inline with no locking.
	Workers int

	// Logger receives run lifecycle events. If nil, the engine is silent.
	Logger *logrus.Logger
}

// Option configures a search.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Workers: DefaultWorkers,
	}
}

// validate checks the configuration and returns an error if invalid.
func (c *Config) validate() error {
	if c.Workers < 1 {
		return ErrInvalidWorkerCount
	}
	return nil
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
