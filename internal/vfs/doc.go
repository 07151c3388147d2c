// Package vfs implements the synthetic in-memory filesystem behind the
// simulated shell session.
//
// The filesystem is a persistent (copy-on-write) tree of immutable nodes.
// Every mutating operation returns a new Tree handle; the previous handle
// remains valid and observes the tree exactly as it was. Updates rebuild
// only the spine from the root to the touched entry and share every
// untouched subtree by reference, so a mutation costs O(depth), not
// O(size).
//
// Key pieces:
//   - Normalize/Resolve: pure path arithmetic, total on any input
//   - Node: immutable directory or file
//   - Tree: the filesystem handle with Lookup, Mkdir, Touch, ReadFile, ReadDir
//   - DefaultTree: the fixed Android-flavored seed tree
//
// Paths are slash-separated, case-sensitive, and always absolute once
// normalized. There are no symlinks, no hard links, and no globbing.
package vfs
