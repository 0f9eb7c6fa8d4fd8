package runner_test

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/jakoblorz/cargo-remote/internal/runner"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*runner.OSRunner, *bytes.Buffer) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available in PATH")
	}

	var out bytes.Buffer
	return &runner.OSRunner{
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}, &out
}

func TestOSRunner_Success(t *testing.T) {
	r, out := newTestRunner(t)

	result, err := r.Run(context.Background(), "sh", "-c", "echo synced")
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, "synced\n", out.String())
}

func TestOSRunner_ExitCode(t *testing.T) {
	r, _ := newTestRunner(t)

	result, err := r.Run(context.Background(), "sh", "-c", "exit 101")
	require.NoError(t, err)
	require.False(t, result.Success())
	require.False(t, result.Signaled)
	require.Equal(t, 101, result.ExitCode)
}

func TestOSRunner_Signaled(t *testing.T) {
	r, _ := newTestRunner(t)

	result, err := r.Run(context.Background(), "sh", "-c", "kill -TERM $$")
	require.NoError(t, err)
	require.True(t, result.Signaled)
	require.False(t, result.Success())
}

func TestOSRunner_StartFailure(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := r.Run(context.Background(), "cargo-remote-definitely-not-installed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to run cargo-remote-definitely-not-installed")
}

func TestOSRunner_StdinIsForwarded(t *testing.T) {
	r, out := newTestRunner(t)
	r.Stdin = strings.NewReader("y\n")

	result, err := r.Run(context.Background(), "sh", "-c", "read answer; echo got $answer")
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, "got y\n", out.String())
}
