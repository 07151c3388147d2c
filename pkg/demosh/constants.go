package demosh

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid session profile
)

const (
	// DefaultUser is the identity shown in the prompt when no profile
	// overrides it.
	DefaultUser = "user"

	// DefaultElevatedUser is the identity shown after a successful su.
	DefaultElevatedUser = "root"

	// DefaultHost is the host label shown in the prompt.
	DefaultHost = "android"

	// DefaultHome is the starting working directory of a session.
	DefaultHome = "/home/user"

	// HomeAlias replaces the home-directory prefix in the rendered prompt.
	HomeAlias = "~"
)
