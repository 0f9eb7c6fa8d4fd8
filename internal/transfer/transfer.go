// Package transfer plans the rsync invocations moving a project to the build
// server and its artifacts back.
//
// Every transfer uses archive mode, deletes extraneous files at the
// destination, compresses in transit and reports overall progress. The
// functions only build argument vectors; running them is up to the caller.
package transfer

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/cargo-remote/internal/models"
	"github.com/jakoblorz/cargo-remote/internal/remote"
)

const (
	// Program is the executable all transfers are run with.
	Program = "rsync"

	// TargetDir is cargo's build output directory.
	TargetDir = "target"

	// LockFile is the dependency lock file retrieved after every build.
	LockFile = "Cargo.lock"
)

func baseArgs() []string {
	return []string{"-a", "--delete", "--compress", "--info=progress2"}
}

// Outbound returns the arguments synchronizing projectRoot to buildPath on host.
//
// The build output directory is never transferred. Hidden files and
// directories are skipped unless hidden is set. The remote rsync is wrapped so
// the build root directory is created in the same round trip.
func Outbound(host, buildPath, projectRoot string, hidden bool) []string {
	args := baseArgs()
	args = append(args, "--exclude", TargetDir)

	if !hidden {
		args = append(args, "--exclude", ".*")
	}

	return append(args,
		"--rsync-path", fmt.Sprintf("mkdir -p %s && rsync", remote.BuildRoot),
		dirArg(projectRoot),
		remoteArg(host, buildPath),
	)
}

// Artifacts returns the arguments retrieving build artifacts, and false when
// no copy-back was requested.
func Artifacts(host, buildPath, projectRoot string, copyBack models.CopyBack) ([]string, bool) {
	if !copyBack.Requested {
		return nil, false
	}

	args := baseArgs()
	if copyBack.Whole() {
		return append(args,
			remoteArg(host, buildPath+TargetDir+"/"),
			dirArg(filepath.Join(projectRoot, TargetDir)),
		), true
	}

	return append(args,
		remoteArg(host, buildPath+TargetDir+"/"+copyBack.File),
		filepath.Join(projectRoot, TargetDir, copyBack.File),
	), true
}

// Lock returns the arguments retrieving Cargo.lock into the project root.
func Lock(host, buildPath, projectRoot string) []string {
	return append(baseArgs(),
		remoteArg(host, buildPath+LockFile),
		filepath.Join(projectRoot, LockFile),
	)
}

// dirArg appends the trailing slash that makes rsync copy a directory's
// contents rather than the directory itself.
func dirArg(dir string) string {
	return filepath.Clean(dir) + string(filepath.Separator)
}

func remoteArg(host, path string) string {
	return host + ":" + path
}
