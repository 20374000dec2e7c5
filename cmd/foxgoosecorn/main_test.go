package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidhantpanda/FoxGooseCorn/internal/cli"
)

func TestRun_Classic(t *testing.T) {
	var out, errW bytes.Buffer
	require.NoError(t, run(&out, &errW, nil))
	require.Contains(t, out.String(), "Step 7: 0000")
}

func TestRun_UnreachableExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stuck.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
puzzle "stuck" {
  passengers = ["a", "b", "c"]
  conflict {
    predator = "a"
    prey     = "b"
  }
  conflict {
    predator = "b"
    prey     = "c"
  }
  conflict {
    predator = "a"
    prey     = "c"
  }
}
`), 0o600))

	var out, errW bytes.Buffer
	err := run(&out, &errW, []string{path})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 3, exitErr.Code)
}

func TestRun_StartAndGoalOverrides(t *testing.T) {
	var out, errW bytes.Buffer
	require.NoError(t, run(&out, &errW, []string{"-start", "1010", "-goal", "1101"}))
	require.Contains(t, out.String(), "1010 → 1101")
}

func TestRun_BadFlag(t *testing.T) {
	var out, errW bytes.Buffer
	err := run(&out, &errW, []string{"-format", "yaml"})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
