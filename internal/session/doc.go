// Package session holds the mutable state of one simulated shell session:
// the current working directory, the privilege flag, the transcript of
// commands and their output, and the command-recall buffer used for
// history navigation.
//
// The session never touches the filesystem tree itself; the interpreter
// owns all mutation and keeps the invariant that Cwd always names an
// existing directory in the current tree revision.
package session
