package remote

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/cargo-remote/internal/models"
)

// BuildCommand returns the shell command run on the build server.
//
// The command sources the environment profile, selects the rustup toolchain,
// changes into the remote project directory and the subdirectory the build
// was started from, and runs cargo with the build environment prefixed.
//
// Arguments are joined with single spaces and are NOT shell-escaped. An
// argument containing spaces or shell metacharacters is interpreted by the
// remote shell, so callers have to quote such arguments themselves.
func BuildCommand(opts *models.Options, buildPath, relativeDir string) string {
	var steps []string

	if opts.EnvProfile != "" {
		steps = append(steps, "source "+opts.EnvProfile)
	}
	if opts.RustupDefault != "" {
		steps = append(steps, "rustup default "+opts.RustupDefault)
	}

	steps = append(steps, "cd "+buildPath)

	if relativeDir == "" {
		relativeDir = "."
	}
	steps = append(steps, "cd "+filepath.ToSlash(relativeDir))

	invocation := "cargo " + opts.Command
	if len(opts.Args) > 0 {
		invocation += " " + strings.Join(opts.Args, " ")
	}
	if env := strings.TrimSpace(opts.BuildEnv); env != "" {
		invocation = env + " " + invocation
	}
	steps = append(steps, invocation)

	return strings.Join(steps, "; ")
}

// SSHArgs returns the ssh arguments running command on host. A pseudo-terminal
// is requested so cargo's progress output renders as it would locally.
func SSHArgs(host, command string) []string {
	return []string{"-t", host, command}
}
