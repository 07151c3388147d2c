package interp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
	"github.com/demosh/demosh/pkg/demosh"
)

// helpLines is the fixed listing emitted by help.
var helpLines = []string{
	"Available commands:",
	"  help            Show available commands",
	"  clear           Clear the terminal",
	"  pwd             Print current directory",
	"  ls [path]       List directory contents",
	"  cd [path]       Change current directory",
	"  cat <file>      Print a file",
	"  mkdir <dir>     Create a directory",
	"  touch <file>    Create a file if missing",
	"  echo <args>     Print arguments",
	"  whoami          Print current user",
	"  su              Switch to root",
	"  exit            Leave the root shell",
	"  date            Print current date and time",
	"  uname [-a]      Print system information",
}

func (i *Interp) cmdHelp(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	records := make([]session.Record, 0, len(helpLines))
	for _, line := range helpLines {
		records = append(records, session.Output(line))
	}
	return t, records
}

func (i *Interp) cmdClear(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	st.ClearTranscript()
	return t, nil
}

func (i *Interp) cmdPwd(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	return t, []session.Record{session.Output(st.Cwd)}
}

func (i *Interp) cmdWhoami(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	return t, []session.Record{session.Output(st.Identity())}
}

func (i *Interp) cmdSu(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	st.Elevated = true
	return t, nil
}

func (i *Interp) cmdExit(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	if st.Elevated {
		st.Elevated = false
		return t, nil
	}
	// The session itself never terminates; exit only drops privilege.
	return t, []session.Record{session.ErrorLine("exit: cannot exit shell")}
}

func (i *Interp) cmdDate(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	return t, []session.Record{session.Output(i.now().Format(time.UnixDate))}
}

func (i *Interp) cmdUname(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	if len(args) > 0 && args[0] == "-a" {
		line := fmt.Sprintf("Linux %s 4.14.117-perf+ #1 SMP PREEMPT aarch64 Android", st.Host)
		return t, []session.Record{session.Output(line)}
	}
	return t, []session.Record{session.Output("Linux")}
}

func (i *Interp) cmdEcho(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	// Tokens rejoin with single spaces; original spacing is lost by the
	// quoting-free parser.
	return t, []session.Record{session.Output(strings.Join(args, " "))}
}

func (i *Interp) cmdLs(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	entries, err := t.ReadDir(vfs.Resolve(st.Cwd, target))
	if err != nil {
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("ls: cannot access '%s': No such file or directory", target))}
	}
	records := make([]session.Record, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		records = append(records, session.Output(name))
	}
	return t, records
}

func (i *Interp) cmdCd(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	target := st.Home
	if len(args) > 0 {
		target = args[0]
	}
	abs := vfs.Resolve(st.Cwd, target)
	n, ok := t.Lookup(abs)
	if !ok {
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("cd: %s: No such file or directory", target))}
	}
	if !n.IsDir() {
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("cd: %s: Not a directory", target))}
	}
	// Validated above; Cwd never dangles.
	st.Cwd = abs
	return t, nil
}

func (i *Interp) cmdMkdir(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	if len(args) == 0 {
		return t, []session.Record{session.ErrorLine("mkdir: missing operand")}
	}
	target := args[0]
	next, err := t.Mkdir(vfs.Resolve(st.Cwd, target))
	switch {
	case errors.Is(err, demosh.ErrNoSuchParent):
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("mkdir: cannot create directory '%s': No such file or directory", target))}
	case errors.Is(err, demosh.ErrExists):
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("mkdir: cannot create directory '%s': File exists", target))}
	}
	return next, nil
}

func (i *Interp) cmdTouch(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	if len(args) == 0 {
		return t, []session.Record{session.ErrorLine("touch: missing file operand")}
	}
	target := args[0]
	next, err := t.Touch(vfs.Resolve(st.Cwd, target))
	if err != nil {
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("touch: cannot touch '%s': No such file or directory", target))}
	}
	return next, nil
}

func (i *Interp) cmdCat(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record) {
	if len(args) == 0 {
		return t, []session.Record{session.ErrorLine("cat: missing operand")}
	}
	target := args[0]
	content, err := t.ReadFile(vfs.Resolve(st.Cwd, target))
	switch {
	case errors.Is(err, demosh.ErrNotFound):
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("cat: %s: No such file or directory", target))}
	case errors.Is(err, demosh.ErrIsADirectory):
		return t, []session.Record{session.ErrorLine(fmt.Sprintf("cat: %s: Is a directory", target))}
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return t, nil
	}
	records := make([]session.Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, session.Output(line))
	}
	return t, records
}
