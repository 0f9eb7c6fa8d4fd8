package exitcode

import (
	"errors"
	"fmt"
)

// Reserved exit codes for fatal conditions.
//
// They are negative so they never collide with the exit status of the remote
// cargo command, which is propagated as-is on completion.
const (
	// Success is returned when every step ran and the remote command succeeded.
	Success = 0

	// Usage is returned for command line parsing errors.
	Usage = 1

	// Metadata indicates the project manifest could not be read or parsed.
	Metadata = -1

	// NoProject indicates the manifest declares neither a package nor a workspace.
	NoProject = -2

	// NoRemote indicates no remote host was given on the command line or in a config file.
	NoRemote = -3

	// SyncOut indicates the transfer of the sources to the build server failed.
	SyncOut = -4

	// RemoteBuild indicates the remote cargo command could not be run.
	RemoteBuild = -5

	// CopyBack indicates the transfer of build artifacts back to the client failed.
	CopyBack = -6

	// CopyLock indicates the transfer of Cargo.lock back to the client failed.
	CopyLock = -7

	// CurrentDir indicates the current working directory could not be read.
	CurrentDir = -8

	// RelativePath indicates the working directory could not be expressed relative to the project root.
	RelativePath = -9

	// ManifestNotFound indicates no Cargo.toml was found.
	ManifestNotFound = -10
)

// Error is a fatal error carrying the exit code the process terminates with.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a fatal error with the given code and message.
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches an exit code to err.
func Wrap(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// From returns the exit code for err.
//
// A nil error maps to Success, an error without an attached code maps to Usage.
func From(err error) int {
	if err == nil {
		return Success
	}

	var codeErr *Error
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}

	return Usage
}

// Is reports whether err carries the given exit code.
func Is(err error, code int) bool {
	var codeErr *Error
	return errors.As(err, &codeErr) && codeErr.Code == code
}
