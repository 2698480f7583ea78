package convert

// Progress contains information about an in-flight generation.
// Passed to ProgressCallback after each emitted frame.
type Progress struct {
	// CurrentFrame is the frame just emitted (0-based)
	CurrentFrame int

	// TotalFrames is the total number of frames for the stream
	TotalFrames int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesEncoded is the total number of payload bytes encoded so far
	BytesEncoded int64
}

// ProgressCallback is called after each emitted frame to report
// progress. Implementations should return quickly to avoid slowing the
// encoding loop.
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// generator. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
