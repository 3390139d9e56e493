package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridpath/gridpath/internal/cli"
)

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "open.hcl")
	src := "rows = 5\nstart {\n  row = 0\n  col = 0\n}\nend {\n  row = last\n  col = last\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{"-algo", "astar", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Path Found: true")
	require.Contains(t, out.String(), "Path Length: 7")
	require.Contains(t, logs.String(), "Search complete.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingScenario(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "none.hcl")})
	require.Error(t, err)
}
