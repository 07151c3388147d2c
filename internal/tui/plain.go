package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/demosh/demosh/internal/interp"
	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
)

// RunPlain drives the session as a line-oriented REPL on the given
// reader/writer pair, without any terminal control sequences. Used for
// piped input and the --plain flag; it makes the whole program scriptable
// end to end.
func RunPlain(st *session.State, tree vfs.Tree, in *interp.Interp, r io.Reader, w io.Writer) (vfs.Tree, error) {
	scanner := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprint(w, st.Prompt()); err != nil {
			return tree, err
		}
		if !scanner.Scan() {
			break
		}
		var records []session.Record
		tree, records = in.Execute(st, tree, scanner.Text())
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, rec.Text); err != nil {
				return tree, err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return tree, err
	}
	return tree, scanner.Err()
}
