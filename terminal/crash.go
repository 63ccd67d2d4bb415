package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash restores the terminal, prints the panic with its stack trace and exits.
// No-op for a nil r so it can take recover() directly.
func (w *Window) HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before printing
	w.screen.Fini()
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the terminal is restored on crash.
func (w *Window) Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				w.HandleCrash(r)
			}
		}()
		fn()
	}()
}
