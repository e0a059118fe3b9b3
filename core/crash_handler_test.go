package core

import (
	"testing"
)

func TestHandleCrashNilIsNoop(t *testing.T) {
	called := false
	SetCrashCleanup(func() { called = true })
	defer SetCrashCleanup(nil)

	HandleCrash(nil)
	if called {
		t.Error("Cleanup must not run without a panic value")
	}
}

func TestHandleCrashRunsCleanupThenExits(t *testing.T) {
	var order []string
	SetCrashCleanup(func() { order = append(order, "cleanup") })
	defer SetCrashCleanup(nil)

	crashExit = func(code int) { order = append(order, "exit") }
	defer func() { crashExit = osExit }()

	HandleCrash("boom")

	if len(order) != 2 || order[0] != "cleanup" || order[1] != "exit" {
		t.Errorf("Expected cleanup then exit, got %v", order)
	}
}
