package runner

import (
	"context"
)

// Runner starts external programs (rsync, ssh) and waits for them.
//
// The returned error is only non-nil when the program could not be run at
// all. A program that ran and exited non-zero is reported through Result.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Result is the outcome of a program that ran to completion.
type Result struct {
	// ExitCode is the program's exit status, -1 when it was killed by a signal.
	ExitCode int

	// Signaled is set when the program was terminated by a signal.
	Signaled bool
}

// Success reports whether the program exited with status 0.
func (r Result) Success() bool {
	return !r.Signaled && r.ExitCode == 0
}
