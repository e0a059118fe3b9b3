package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunReturnsExitCodeOnBadConfig(t *testing.T) {
	inTempDir(t)

	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return "missing.toml" }},
		{"invalid value", func(t *testing.T) string {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte("[physics]\nframe_rate = -1.0\n"), 0644); err != nil {
				t.Fatal(err)
			}
			return path
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevConfig, prevDebug := *configFlag, *debugFlag
			t.Cleanup(func() { *configFlag, *debugFlag = prevConfig, prevDebug })

			*configFlag = tt.setup(t)
			*debugFlag = false

			if code := run(); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
		})
	}
}
