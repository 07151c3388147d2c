package vfs

import (
	"sort"

	"github.com/demosh/demosh/pkg/demosh"
)

// Tree is a handle to one revision of the virtual filesystem. The zero
// value is invalid; construct trees with New or DefaultTree. Mutating
// operations return a new Tree and leave the receiver's revision intact.
type Tree struct {
	root *Node
}

// New wraps a root directory node into a Tree. Panics if root is not a
// directory; the root is a directory by invariant and a file root
// indicates programmer error.
func New(root *Node) Tree {
	if root == nil || !root.IsDir() {
		panic("vfs: tree root must be a directory")
	}
	return Tree{root: root}
}

// Root returns the root node of this revision.
func (t Tree) Root() *Node { return t.root }

// Lookup resolves a normalized absolute path to its node. The root path
// "/" resolves to the root node. A missing path reports ok=false; that is
// a sentinel state, not an error.
func (t Tree) Lookup(path string) (*Node, bool) {
	n := t.root
	for _, seg := range segments(Normalize(path)) {
		if !n.IsDir() {
			return nil, false
		}
		child, ok := n.Entry(seg)
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// Mkdir creates an empty directory at path and returns the new revision.
// The parent must exist and be a directory (demosh.ErrNoSuchParent); the
// target name must be free (demosh.ErrExists). On failure the receiver's
// revision is untouched and the returned Tree is the zero value.
func (t Tree) Mkdir(path string) (Tree, error) {
	path = Normalize(path)
	if path == "/" {
		return Tree{}, demosh.ErrExists
	}
	parentPath, name := splitParent(path)
	parent, ok := t.Lookup(parentPath)
	if !ok || !parent.IsDir() {
		return Tree{}, demosh.ErrNoSuchParent
	}
	if _, exists := parent.Entry(name); exists {
		return Tree{}, demosh.ErrExists
	}
	return t.graft(parentPath, parent.withEntry(name, NewDir(nil))), nil
}

// Touch ensures a file entry exists at path. If an entry of any kind is
// already present the call is a no-op returning the same revision: touch
// never truncates and never errors on directories. A missing parent is
// demosh.ErrNoSuchParent.
func (t Tree) Touch(path string) (Tree, error) {
	path = Normalize(path)
	if path == "/" {
		return t, nil
	}
	parentPath, name := splitParent(path)
	parent, ok := t.Lookup(parentPath)
	if !ok || !parent.IsDir() {
		return Tree{}, demosh.ErrNoSuchParent
	}
	if _, exists := parent.Entry(name); exists {
		return t, nil
	}
	return t.graft(parentPath, parent.withEntry(name, NewFile(nil))), nil
}

// ReadFile returns the content of the file at path.
// Fails with demosh.ErrNotFound or demosh.ErrIsADirectory.
func (t Tree) ReadFile(path string) ([]byte, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return nil, demosh.ErrNotFound
	}
	if n.IsDir() {
		return nil, demosh.ErrIsADirectory
	}
	return n.Content(), nil
}

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// ReadDir lists the directory at path, sorted by name in ascending
// case-sensitive byte order. A path naming a file yields that single
// entry, mirroring ls on a file argument. Fails with demosh.ErrNotFound.
func (t Tree) ReadDir(path string) ([]Entry, error) {
	n, ok := t.Lookup(path)
	if !ok {
		return nil, demosh.ErrNotFound
	}
	if !n.IsDir() {
		return []Entry{{Name: Base(Normalize(path)), IsDir: false}}, nil
	}
	entries := make([]Entry, 0, n.Len())
	for name, child := range n.entries {
		entries = append(entries, Entry{Name: name, IsDir: child.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// graft rebuilds the spine from the root down to parentPath, substituting
// repl for the node at parentPath. Every sibling along the spine is shared
// by reference. parentPath must exist; graft is internal to mutations that
// have already validated it.
func (t Tree) graft(parentPath string, repl *Node) Tree {
	return Tree{root: graftAt(t.root, segments(parentPath), repl)}
}

func graftAt(n *Node, segs []string, repl *Node) *Node {
	if len(segs) == 0 {
		return repl
	}
	child, _ := n.Entry(segs[0])
	return n.withEntry(segs[0], graftAt(child, segs[1:], repl))
}
