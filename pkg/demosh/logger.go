package demosh

// Logger provides a pluggable logging interface for demosh diagnostics.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// The logger never carries session transcript output; that belongs to the
// presentation layer. It exists for startup, config, and teardown
// diagnostics only.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
