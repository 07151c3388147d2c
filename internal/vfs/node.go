package vfs

// NodeKind distinguishes the two node variants.
type NodeKind int

const (
	// KindDir is a directory node holding named children.
	KindDir NodeKind = iota
	// KindFile is a file node holding opaque content.
	KindFile
)

// Node is a single entry of the virtual filesystem tree. Nodes are
// immutable after construction: mutations build replacement nodes and
// share the untouched rest of the tree.
type Node struct {
	kind    NodeKind
	entries map[string]*Node
	content []byte
}

// NewDir constructs a directory node owning a copy of the given entries.
// A nil map yields an empty directory.
func NewDir(entries map[string]*Node) *Node {
	m := make(map[string]*Node, len(entries))
	for name, child := range entries {
		m[name] = child
	}
	return &Node{kind: KindDir, entries: m}
}

// NewFile constructs a file node with the given content.
func NewFile(content []byte) *Node {
	return &Node{kind: KindFile, content: content}
}

// Kind reports whether the node is a directory or a file.
func (n *Node) Kind() NodeKind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDir }

// Content returns the file content. Directories return nil.
func (n *Node) Content() []byte { return n.content }

// Entry returns the named child of a directory node.
func (n *Node) Entry(name string) (*Node, bool) {
	child, ok := n.entries[name]
	return child, ok
}

// Len returns the number of children of a directory node.
func (n *Node) Len() int { return len(n.entries) }

// withEntry returns a copy of a directory node with one entry added or
// replaced. All other children are shared by reference.
func (n *Node) withEntry(name string, child *Node) *Node {
	m := make(map[string]*Node, len(n.entries)+1)
	for k, v := range n.entries {
		m[k] = v
	}
	m[name] = child
	return &Node{kind: KindDir, entries: m}
}
