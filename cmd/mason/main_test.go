package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Builds a target from a valid masonfile",
			setup: func(t *testing.T, tmpDir string) {
				content := `version: "1"
rules:
  - target: out.txt
    deps: [src.txt]
    cmd: [sh, -c, "cat src.txt > out.txt"]
`
				require.NoError(t, os.WriteFile(tmpDir+"/masonfile.yaml", []byte(content), 0o600))
				require.NoError(t, os.WriteFile(tmpDir+"/src.txt", []byte("hello\n"), 0o600))
			},
			args:         []string{"mason", "build", "out.txt"},
			expectedExit: 0,
		},
		{
			name:         "Fails without a masonfile",
			setup:        func(*testing.T, string) {},
			args:         []string{"mason", "build", "out.txt"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			originalWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
