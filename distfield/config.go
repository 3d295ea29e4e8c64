package distfield

// Config holds distance field generation parameters.
type Config struct {
	// Threshold is the lowest alpha that counts as covered.
	// 1 means any visible pixel, 255 only fully opaque ones.
	// Default: 1
	Threshold uint8

	// Workers is the number of goroutines used for mask construction and
	// sampling. Zero uses GOMAXPROCS.
	// Default: 0
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: 1,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Threshold == 0 {
		return &ConfigError{Field: "Threshold", Reason: "must be in [1, 255]"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	return nil
}
