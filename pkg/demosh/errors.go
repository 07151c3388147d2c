package demosh

import "errors"

// Sentinel errors for the virtual filesystem and command layer.
// These enable callers to distinguish failure kinds using errors.Is().
//
// Example usage:
//
//	_, err := tree.ReadFile("/system/build.prop")
//	if errors.Is(err, demosh.ErrIsADirectory) {
//	    // Render an "Is a directory" line
//	}
var (
	// ErrNotFound indicates the path does not resolve to any node.
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotADirectory indicates the path resolves to a file where a
	// directory is required.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates the path resolves to a directory where a
	// file is required.
	ErrIsADirectory = errors.New("is a directory")

	// ErrNoSuchParent indicates the parent of the target path does not
	// exist or is not a directory.
	ErrNoSuchParent = errors.New("no such parent directory")

	// ErrExists indicates an entry with the target name already exists.
	ErrExists = errors.New("file exists")

	// ErrMissingOperand indicates a builtin was invoked without its
	// required argument.
	ErrMissingOperand = errors.New("missing operand")

	// ErrUnknownCommand indicates the command name matched no builtin.
	ErrUnknownCommand = errors.New("command not found")

	// ErrInvalidConfig indicates the session profile is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
//
// Filesystem sentinels deliberately do not appear here: they are rendered
// as transcript lines inside the session and never escape to the process
// boundary.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrInvalidConfig) {
		return ExitConfigError
	}

	return ExitGeneralError
}
