package vfs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/demosh/demosh/pkg/demosh"
)

func testTree() Tree {
	return New(NewDir(map[string]*Node{
		"home": NewDir(map[string]*Node{
			"user": NewDir(map[string]*Node{
				"readme.txt": NewFile([]byte("hello\n")),
			}),
		}),
		"etc": NewDir(map[string]*Node{
			"hostname": NewFile([]byte("android\n")),
		}),
	}))
}

func TestLookup(t *testing.T) {
	tr := testTree()

	root, ok := tr.Lookup("/")
	require.True(t, ok)
	require.True(t, root.IsDir())

	n, ok := tr.Lookup("/home/user/readme.txt")
	require.True(t, ok)
	require.False(t, n.IsDir())

	_, ok = tr.Lookup("/home/nobody")
	require.False(t, ok)

	// Descending through a file is a miss, not a panic.
	_, ok = tr.Lookup("/etc/hostname/deeper")
	require.False(t, ok)

	// Matching is case-sensitive.
	_, ok = tr.Lookup("/Home/user")
	require.False(t, ok)
}

func TestMkdir_RoundTrip(t *testing.T) {
	tr := testTree()

	next, err := tr.Mkdir("/home/user/notes")
	require.NoError(t, err)

	n, ok := next.Lookup("/home/user/notes")
	require.True(t, ok)
	require.True(t, n.IsDir())
}

func TestMkdir_Failures(t *testing.T) {
	tr := testTree()

	_, err := tr.Mkdir("/missing/child")
	require.ErrorIs(t, err, demosh.ErrNoSuchParent)

	// A file is not a valid parent.
	_, err = tr.Mkdir("/etc/hostname/sub")
	require.ErrorIs(t, err, demosh.ErrNoSuchParent)

	_, err = tr.Mkdir("/etc")
	require.ErrorIs(t, err, demosh.ErrExists)

	// The existing entry may be a file; the name is taken either way.
	_, err = tr.Mkdir("/etc/hostname")
	require.ErrorIs(t, err, demosh.ErrExists)

	_, err = tr.Mkdir("/")
	require.ErrorIs(t, err, demosh.ErrExists)
}

func TestMkdir_CopyOnWriteIsolation(t *testing.T) {
	tr := testTree()

	next, err := tr.Mkdir("/home/user/notes")
	require.NoError(t, err)

	// The original revision does not see the new directory.
	_, ok := tr.Lookup("/home/user/notes")
	require.False(t, ok)

	// Untouched subtrees are shared by reference, not cloned.
	oldEtc, _ := tr.Lookup("/etc")
	newEtc, _ := next.Lookup("/etc")
	require.Same(t, oldEtc, newEtc)

	// The spine down to the mutation is rebuilt.
	oldHome, _ := tr.Lookup("/home")
	newHome, _ := next.Lookup("/home")
	require.NotSame(t, oldHome, newHome)
}

func TestTouch_CreatesFile(t *testing.T) {
	tr := testTree()

	next, err := tr.Touch("/home/user/todo.txt")
	require.NoError(t, err)

	n, ok := next.Lookup("/home/user/todo.txt")
	require.True(t, ok)
	require.False(t, n.IsDir())
	require.Empty(t, n.Content())

	// Original untouched.
	_, ok = tr.Lookup("/home/user/todo.txt")
	require.False(t, ok)
}

func TestTouch_Idempotent(t *testing.T) {
	tr := testTree()

	once, err := tr.Touch("/home/user/todo.txt")
	require.NoError(t, err)
	twice, err := once.Touch("/home/user/todo.txt")
	require.NoError(t, err)

	// Second touch is a no-op: same revision handle back.
	require.Same(t, once.Root(), twice.Root())
}

func TestTouch_ExistingEntriesUntouched(t *testing.T) {
	tr := testTree()

	// Touching an existing file does not truncate it.
	next, err := tr.Touch("/home/user/readme.txt")
	require.NoError(t, err)
	content, err := next.ReadFile("/home/user/readme.txt")
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(content))

	// Touching a directory is a no-op, not an error.
	next, err = tr.Touch("/etc")
	require.NoError(t, err)
	require.Same(t, tr.Root(), next.Root())
}

func TestTouch_NoSuchParent(t *testing.T) {
	tr := testTree()
	_, err := tr.Touch("/missing/file.txt")
	require.ErrorIs(t, err, demosh.ErrNoSuchParent)
}

func TestReadFile(t *testing.T) {
	tr := testTree()

	content, err := tr.ReadFile("/etc/hostname")
	require.NoError(t, err)
	require.Equal(t, "android\n", string(content))

	_, err = tr.ReadFile("/etc/missing")
	require.ErrorIs(t, err, demosh.ErrNotFound)

	_, err = tr.ReadFile("/etc")
	require.ErrorIs(t, err, demosh.ErrIsADirectory)
}

func TestReadDir_SortDeterminism(t *testing.T) {
	tr := New(NewDir(map[string]*Node{
		"b": NewFile(nil),
		"A": NewFile(nil),
		"c": NewDir(nil),
	}))

	entries, err := tr.ReadDir("/")
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Name: "A", IsDir: false},
		{Name: "b", IsDir: false},
		{Name: "c", IsDir: true},
	}, entries)
}

func TestReadDir_FileYieldsSingleEntry(t *testing.T) {
	tr := testTree()

	entries, err := tr.ReadDir("/home/user/readme.txt")
	require.NoError(t, err)
	require.Equal(t, []Entry{{Name: "readme.txt", IsDir: false}}, entries)

	_, err = tr.ReadDir("/nowhere")
	require.ErrorIs(t, err, demosh.ErrNotFound)
}
