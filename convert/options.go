package convert

// Config holds the generator configuration.
type Config struct {
	// PageSize is the target device's write granularity in bytes.
	// Payload sizes are chosen as multiples of it. Default is 1.
	PageSize uint32

	// Family is the target board family ID, set when HasFamily is true
	Family uint32

	// HasFamily indicates whether a family ID was supplied
	HasFamily bool

	// ProgressCallback is called after each emitted frame (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		PageSize: 1,
	}
}

// Option is a functional option for configuring generation.
type Option func(*Config)

// WithPageSize sets the target device page size. Values larger than the
// maximum payload size fall back to 1 during generation, matching the
// established tool behavior.
//
// Example:
//
//	report, err := convert.Generate(dst, src, size, convert.WithPageSize(256))
func WithPageSize(size uint32) Option {
	return func(c *Config) {
		if size > 0 {
			c.PageSize = size
		}
	}
}

// WithFamily tags every emitted frame with a board family ID. The
// family ID replaces the total-size field in the frame, as the wire
// format dictates.
//
// Example:
//
//	report, err := convert.Generate(dst, src, size, convert.WithFamily(0xE48BFF56))
func WithFamily(id uint32) Option {
	return func(c *Config) {
		c.Family = id
		c.HasFamily = true
	}
}

// WithProgressCallback sets a callback to track encoding progress.
//
// Example:
//
//	convert.Generate(dst, src, size,
//	    convert.WithProgressCallback(func(p convert.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for generation operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
