package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/demosh/demosh/internal/cli"
	"github.com/demosh/demosh/pkg/demosh"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(demosh.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(demosh.ExitCodeForError(err))
	}
}
