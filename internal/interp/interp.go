package interp

import (
	"strings"
	"time"

	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
	"github.com/demosh/demosh/pkg/demosh"
)

// shellName prefixes the command-not-found line, the way bash and dash
// name themselves in their diagnostics.
const shellName = "demosh"

// builtin is the uniform contract every command handler satisfies.
// Handlers may mutate the session, must not mutate the tree in place, and
// return the (possibly new) tree revision plus their output records.
type builtin func(st *session.State, t vfs.Tree, args []string) (vfs.Tree, []session.Record)

// Interp owns the builtin registry and dispatches submitted lines.
type Interp struct {
	builtins map[string]builtin
	logger   demosh.Logger
	now      func() time.Time
}

// New creates an interpreter using the wall clock.
func New(logger demosh.Logger) *Interp {
	return NewWithClock(logger, time.Now)
}

// NewWithClock creates an interpreter with an injected clock, so that
// date output is testable.
func NewWithClock(logger demosh.Logger, now func() time.Time) *Interp {
	i := &Interp{logger: logger, now: now}
	i.builtins = map[string]builtin{
		"help":   i.cmdHelp,
		"clear":  i.cmdClear,
		"pwd":    i.cmdPwd,
		"whoami": i.cmdWhoami,
		"su":     i.cmdSu,
		"exit":   i.cmdExit,
		"date":   i.cmdDate,
		"uname":  i.cmdUname,
		"echo":   i.cmdEcho,
		"ls":     i.cmdLs,
		"cd":     i.cmdCd,
		"mkdir":  i.cmdMkdir,
		"touch":  i.cmdTouch,
		"cat":    i.cmdCat,
	}
	return i
}

// Execute parses and runs one submitted line. A whitespace-only line is a
// no-op: not recorded, not dispatched. Otherwise the line is appended to
// the recall buffer and to the transcript as a command record before any
// of its output, so replaying the transcript stays causally consistent.
func (i *Interp) Execute(st *session.State, t vfs.Tree, line string) (vfs.Tree, []session.Record) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return t, nil
	}

	fields := strings.Fields(trimmed)
	name, args := fields[0], fields[1:]

	st.PushHistory(trimmed)
	st.AppendCommand(trimmed)

	handler, ok := i.builtins[name]
	if !ok {
		i.logger.Verbose("session %s: unknown command %q", st.ID, name)
		records := []session.Record{session.ErrorLine(shellName + ": " + name + ": command not found")}
		st.Append(records...)
		return t, records
	}

	next, records := handler(st, t, args)
	st.Append(records...)
	return next, records
}

// Commands returns the registered builtin names, for completion or help.
func (i *Interp) Commands() []string {
	names := make([]string, 0, len(i.builtins))
	for name := range i.builtins {
		names = append(names, name)
	}
	return names
}
