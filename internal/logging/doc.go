// Package logging provides concrete implementations of the demosh.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
// The logger carries diagnostics only; simulated shell output goes through the
// session transcript, never through a logger.
package logging
