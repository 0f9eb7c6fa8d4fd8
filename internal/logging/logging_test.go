package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_NonTerminalUsesTextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("Transferring sources to build server.", Remote("buildbox"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `msg="Transferring sources to build server."`)
	require.Contains(t, out, "remote=buildbox")
}

func TestNew_DebugEnablesDebugRecords(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, true)
	logger.Debug("rsync", Args([]string{"-a", "--delete"}))

	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "msg=rsync")
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Debug("dropped")
	logger.With(Project("proj")).WithGroup("sync").Warn("ignoring config file",
		Path("/home/u/proj/.cargo-remote.toml"), Error(errors.New("bad toml")))

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "ignoring config file")
	require.Contains(t, out, "project=")
	require.NotContains(t, out, "sync.project=")
	require.Contains(t, out, "proj")
	require.Contains(t, out, "sync.path=")
	require.Contains(t, out, `"bad toml"`)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestErrorAttr(t *testing.T) {
	require.Equal(t, "", Error(nil).Value.String())
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
