// Package core holds process-wide crash handling shared by every goroutine
// the runtime starts.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetHook func()

	// exit and crashOut are swapped in tests
	exit               = os.Exit
	crashOut io.Writer = os.Stderr
)

// SetResetHook registers the function that restores the terminal on crash
// Passing nil clears it
func SetResetHook(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	resetMu.Lock()
	hook := resetHook
	resetHook = nil
	resetMu.Unlock()

	// Restore terminal to sane state before printing
	if hook != nil {
		func() {
			defer func() { _ = recover() }()
			hook()
		}()
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
