// Package interp dispatches command lines against the virtual filesystem
// and the session state.
//
// The interpreter is a reducer: Execute takes the current session state,
// the current tree revision, and one submitted line, and returns the next
// tree revision plus the output records the command produced. Builtins
// never return Go errors to the caller; every failure becomes an
// error-flagged transcript line and leaves both the tree and the session
// unchanged.
//
// With a fixed clock every Execute call is deterministic in its inputs.
package interp
