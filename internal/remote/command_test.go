package remote

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/cargo-remote/internal/models"
	"github.com/stretchr/testify/require"
)

const testBuildPath = "~/remote-builds/0123456789abcdef/"

func TestBuildCommand_Defaults(t *testing.T) {
	opts := models.NewOptions()
	opts.Command = "build"
	opts.Args = []string{"--release"}

	snaps.MatchSnapshot(t, BuildCommand(opts, testBuildPath, "sub"))
}

func TestBuildCommand_Order(t *testing.T) {
	opts := models.NewOptions()
	opts.EnvProfile = "~/.profile"
	opts.RustupDefault = "nightly-2024-05-01"
	opts.BuildEnv = "RUSTFLAGS=-Ctarget-cpu=native CARGO_INCREMENTAL=0"
	opts.Command = "test"
	opts.Args = []string{"-p", "core", "--", "--nocapture"}

	require.Equal(t,
		"source ~/.profile; rustup default nightly-2024-05-01; cd "+testBuildPath+"; cd crates/core; "+
			"RUSTFLAGS=-Ctarget-cpu=native CARGO_INCREMENTAL=0 cargo test -p core -- --nocapture",
		BuildCommand(opts, testBuildPath, "crates/core"))
}

func TestBuildCommand_AtRoot(t *testing.T) {
	opts := models.NewOptions()
	opts.Command = "check"

	require.Equal(t,
		"source /etc/profile; rustup default stable; cd "+testBuildPath+"; cd .; RUST_BACKTRACE=1 cargo check",
		BuildCommand(opts, testBuildPath, "."))
	require.Equal(t,
		BuildCommand(opts, testBuildPath, "."),
		BuildCommand(opts, testBuildPath, ""))
}

func TestBuildCommand_EmptySettingsAreOmitted(t *testing.T) {
	opts := &models.Options{Command: "build"}

	require.Equal(t, "cd "+testBuildPath+"; cd .; cargo build", BuildCommand(opts, testBuildPath, "."))
}

func TestBuildCommand_ArgumentsAreNotEscaped(t *testing.T) {
	opts := &models.Options{Command: "run", Args: []string{"--", "hello world", "$HOME"}}

	require.Equal(t, "cd "+testBuildPath+"; cd .; cargo run -- hello world $HOME", BuildCommand(opts, testBuildPath, "."))
}

func TestSSHArgs(t *testing.T) {
	require.Equal(t, []string{"-t", "buildbox", "cargo build"}, SSHArgs("buildbox", "cargo build"))
}
