package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var osExit = os.Exit

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashExit    = osExit
)

// SetCrashCleanup registers the terminal restore run before a crash report is printed
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = fn
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()

	// Restore terminal to sane state before anything reaches stderr
	if cleanup != nil {
		cleanup()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}
