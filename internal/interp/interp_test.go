package interp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/demosh/demosh/internal/logging"
	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
)

func newTestInterp() *Interp {
	fixed := time.Date(2024, 5, 4, 12, 30, 0, 0, time.UTC)
	return NewWithClock(logging.NewNullLogger(), func() time.Time { return fixed })
}

func newTestSession() (*session.State, vfs.Tree) {
	return session.New("user", "root", "android", "/home/user"), vfs.DefaultTree()
}

func TestExecute_WhitespaceOnlyIsNoOp(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	next, records := i.Execute(st, tr, "   \t  ")
	require.Empty(t, records)
	require.Empty(t, st.Transcript)
	require.Empty(t, st.History)
	require.Same(t, tr.Root(), next.Root())
}

func TestExecute_RecordsCommandBeforeOutput(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	_, records := i.Execute(st, tr, "  pwd  ")
	require.Len(t, records, 1)
	require.Equal(t, "/home/user", records[0].Text)

	require.Len(t, st.Transcript, 2)
	require.Equal(t, session.RecordCommand, st.Transcript[0].Kind)
	require.Equal(t, "pwd", st.Transcript[0].Text)
	require.Equal(t, "user@android:~$ ", st.Transcript[0].Prompt)
	require.Equal(t, session.RecordOutput, st.Transcript[1].Kind)

	require.Equal(t, []string{"pwd"}, st.History)
}

func TestExecute_UnknownCommand(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	next, records := i.Execute(st, tr, "foobar")
	require.Len(t, records, 1)
	require.True(t, records[0].IsErr)
	require.Equal(t, "demosh: foobar: command not found", records[0].Text)

	// Filesystem and session invariants unchanged.
	require.Same(t, tr.Root(), next.Root())
	require.Equal(t, "/home/user", st.Cwd)
	require.False(t, st.Elevated)
}

func TestScenario_MkdirCdLs(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	tr, records := i.Execute(st, tr, "mkdir notes")
	require.Empty(t, records)

	tr, records = i.Execute(st, tr, "cd notes")
	require.Empty(t, records)
	require.Equal(t, "/home/user/notes", st.Cwd)

	tr, records = i.Execute(st, tr, "cd ..")
	require.Empty(t, records)
	require.Equal(t, "/home/user", st.Cwd)

	_, records = i.Execute(st, tr, "ls")
	var names []string
	for _, r := range records {
		require.False(t, r.IsErr)
		names = append(names, r.Text)
	}
	require.Contains(t, names, "notes/")
	require.Contains(t, names, "about.txt")
}

func TestScenario_CatBuildProp(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	want, err := tr.ReadFile("/system/build.prop")
	require.NoError(t, err)

	_, records := i.Execute(st, tr, "cat /system/build.prop")
	require.NotEmpty(t, records)
	var got []string
	for _, r := range records {
		require.False(t, r.IsErr)
		got = append(got, r.Text)
	}
	// Verbatim content, one record per line.
	require.Equal(t, string(want), joinLines(got)+"\n")

	_, records = i.Execute(st, tr, "cat /system")
	require.Len(t, records, 1)
	require.True(t, records[0].IsErr)
	require.Equal(t, "cat: /system: Is a directory", records[0].Text)
}

func joinLines(lines []string) string {
	out := ""
	for n, line := range lines {
		if n > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

func TestScenario_MkdirExisting(t *testing.T) {
	i := newTestInterp()
	st, tr := newTestSession()

	next, records := i.Execute(st, tr, "mkdir /sdcard/Download")
	require.Len(t, records, 1)
	require.True(t, records[0].IsErr)
	require.Equal(t, "mkdir: cannot create directory '/sdcard/Download': File exists", records[0].Text)
	require.Same(t, tr.Root(), next.Root())
}

func TestExecute_DeterministicWithFixedClock(t *testing.T) {
	lines := []string{"pwd", "ls", "mkdir x", "cd x", "ls", "date", "cat /etc/hostname"}

	run := func() []session.Record {
		i := newTestInterp()
		st, tr := newTestSession()
		for _, line := range lines {
			tr, _ = i.Execute(st, tr, line)
		}
		return st.Transcript
	}

	require.Equal(t, run(), run())
}

func TestCommands_CoversRegistry(t *testing.T) {
	i := newTestInterp()
	names := i.Commands()
	require.Len(t, names, 14)
	require.Contains(t, names, "ls")
	require.Contains(t, names, "uname")
}
