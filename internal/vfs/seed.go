package vfs

import "github.com/demosh/demosh/pkg/demosh"

// buildProp is the seeded /system/build.prop, rendered verbatim by cat.
const buildProp = `ro.build.version.release=11
ro.build.version.sdk=30
ro.build.type=user
ro.build.tags=release-keys
ro.product.brand=google
ro.product.model=sunfish
ro.product.name=sunfish
ro.product.cpu.abi=arm64-v8a
`

const aboutTxt = `This is a simulated shell session. Nothing here touches a real disk.
Type 'help' to see the available commands.
`

// SeedEntry describes one node of a seed overlay: a directory, or a file
// with initial content. Paths must be absolute.
type SeedEntry struct {
	Path    string
	Dir     bool
	Content string
}

// DefaultTree builds the fixed Android-flavored tree every session starts
// from.
func DefaultTree() Tree {
	return New(NewDir(map[string]*Node{
		"bin": NewDir(nil),
		"dev": NewDir(map[string]*Node{
			"null": NewFile(nil),
		}),
		"etc": NewDir(map[string]*Node{
			"hostname": NewFile([]byte("android\n")),
		}),
		"home": NewDir(map[string]*Node{
			"user": NewDir(map[string]*Node{
				"about.txt": NewFile([]byte(aboutTxt)),
				"projects":  NewDir(nil),
			}),
		}),
		"sdcard": NewDir(map[string]*Node{
			"Download": NewDir(nil),
			"DCIM":     NewDir(nil),
		}),
		"system": NewDir(map[string]*Node{
			"build.prop": NewFile([]byte(buildProp)),
		}),
		"tmp": NewDir(nil),
	}))
}

// ApplySeed layers profile-supplied entries over the tree. Parent
// directories are created as needed; an existing file at a seed path is
// replaced by the seeded content. Fails with demosh.ErrNotADirectory when
// a seed path runs through an existing file.
func (t Tree) ApplySeed(entries []SeedEntry) (Tree, error) {
	var err error
	for _, e := range entries {
		path := Normalize(e.Path)
		if e.Dir {
			t, err = t.mkdirAll(path)
		} else {
			t, err = t.put(path, NewFile([]byte(e.Content)))
		}
		if err != nil {
			return Tree{}, err
		}
	}
	return t, nil
}

// mkdirAll creates the directory at path along with any missing parents.
// Existing directories along the way are kept as-is.
func (t Tree) mkdirAll(path string) (Tree, error) {
	cur := "/"
	for _, seg := range segments(path) {
		next := Resolve(cur, seg)
		n, ok := t.Lookup(next)
		switch {
		case !ok:
			nt, err := t.Mkdir(next)
			if err != nil {
				return Tree{}, err
			}
			t = nt
		case !n.IsDir():
			return Tree{}, demosh.ErrNotADirectory
		}
		cur = next
	}
	return t, nil
}

// put places a node at path, creating missing parent directories and
// replacing any existing entry of the same name.
func (t Tree) put(path string, node *Node) (Tree, error) {
	if path == "/" {
		return Tree{}, demosh.ErrIsADirectory
	}
	parentPath, name := splitParent(path)
	t, err := t.mkdirAll(parentPath)
	if err != nil {
		return Tree{}, err
	}
	parent, _ := t.Lookup(parentPath)
	return t.graft(parentPath, parent.withEntry(name, node)), nil
}
