package spectrum

import "math"

// Option configures decibel conversion.
type Option func(*config)

type config struct {
	floorDB float64
}

func defaultConfig() config {
	return config{floorDB: DefaultFloorDB}
}

// WithFloorDB sets the clamp value for zero or near-zero magnitudes.
// Non-finite values are ignored.
func WithFloorDB(v float64) Option {
	return func(c *config) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			c.floorDB = v
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
