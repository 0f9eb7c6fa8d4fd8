// Package pipeline runs a cargo command on a remote build server.
//
// A run locates the project, resolves the remote host, synchronizes the
// sources, runs cargo over ssh and retrieves artifacts and Cargo.lock. Steps
// run strictly one after another. Fatal conditions are returned as
// *exitcode.Error; a failing remote build is not fatal, its status becomes
// the run's exit code once the retrieval steps have been attempted.
//
// Example usage:
//
//	p := pipeline.New(filesystem.NewOSFileSystem(), runner.NewOSRunner(), logger)
//	code, err := p.Run(ctx, opts)
//	if err != nil {
//	    os.Exit(exitcode.From(err))
//	}
//	os.Exit(code)
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jakoblorz/cargo-remote/internal/config"
	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/filesystem"
	"github.com/jakoblorz/cargo-remote/internal/logging"
	"github.com/jakoblorz/cargo-remote/internal/models"
	"github.com/jakoblorz/cargo-remote/internal/remote"
	"github.com/jakoblorz/cargo-remote/internal/runner"
	"github.com/jakoblorz/cargo-remote/internal/transfer"
	"github.com/jakoblorz/cargo-remote/internal/workspace"
)

// sshProgram runs the remote build.
const sshProgram = "ssh"

// Pipeline sequences a remote build.
type Pipeline struct {
	fs         filesystem.FileSystem
	runner     runner.Runner
	logger     *slog.Logger
	userConfig string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithUserConfig overrides the location of the user-global config file.
func WithUserConfig(path string) Option {
	return func(p *Pipeline) {
		p.userConfig = path
	}
}

// New creates a new Pipeline.
func New(fs filesystem.FileSystem, r runner.Runner, logger *slog.Logger, options ...Option) *Pipeline {
	p := &Pipeline{
		fs:         fs,
		runner:     r,
		logger:     logger,
		userConfig: config.UserConfigPath(),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Plan is everything known about a build before the first transfer.
type Plan struct {
	Project   *models.Project
	Host      string
	BuildPath string
}

// Prepare locates the project and resolves the remote host. It never starts
// an external program.
func (p *Pipeline) Prepare(opts *models.Options) (*Plan, error) {
	var wsOptions []workspace.Option
	if opts.ManifestPath != "" {
		wsOptions = append(wsOptions, workspace.WithManifestPath(opts.ManifestPath))
	}

	ws := workspace.New(p.fs, wsOptions...)
	if err := ws.Detect(); err != nil {
		return nil, err
	}

	project := ws.Project
	p.logger.Debug("found project",
		logging.Project(project.Name),
		logging.Path(project.RootPath),
		slog.String("relative_dir", project.RelativeDir),
	)

	host, err := config.NewResolver(p.fs, p.logger).Resolve(opts.Remote,
		config.ProjectSource(project.RootPath),
		config.UserSource(p.userConfig),
	)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Project:   project,
		Host:      host,
		BuildPath: remote.BuildPath(project.RootPath),
	}, nil
}

// Run executes the remote build and returns the exit code of the remote
// cargo command.
func (p *Pipeline) Run(ctx context.Context, opts *models.Options) (int, error) {
	plan, err := p.Prepare(opts)
	if err != nil {
		return 0, err
	}

	root := plan.Project.RootPath

	p.logger.Info("Transferring sources to build server.",
		logging.Remote(plan.Host), logging.BuildPath(plan.BuildPath))
	outbound := transfer.Outbound(plan.Host, plan.BuildPath, root, opts.TransferHidden)
	if err := p.sync(ctx, exitcode.SyncOut, "transfer project to build server", outbound); err != nil {
		return 0, err
	}

	status := p.build(ctx, plan, opts)

	if args, ok := transfer.Artifacts(plan.Host, plan.BuildPath, root, opts.CopyBack); ok {
		p.logger.Info("Transferring artifacts back to client.")
		if err := p.sync(ctx, exitcode.CopyBack, "transfer target back to local machine", args); err != nil {
			return status, err
		}
	}

	if !opts.NoCopyLock {
		p.logger.Info("Transferring Cargo.lock file back to client.")
		lock := transfer.Lock(plan.Host, plan.BuildPath, root)
		if err := p.sync(ctx, exitcode.CopyLock, "transfer Cargo.lock back to local machine", lock); err != nil {
			return status, err
		}
	}

	return status, nil
}

// build runs cargo on the build server and returns the status to exit with.
func (p *Pipeline) build(ctx context.Context, plan *Plan, opts *models.Options) int {
	command := remote.BuildCommand(opts, plan.BuildPath, plan.Project.RelativeDir)

	p.logger.Info("Starting build process.", logging.Project(plan.Project.Name))
	p.logger.Debug("ssh", logging.Command(command))

	result, err := p.runner.Run(ctx, sshProgram, remote.SSHArgs(plan.Host, command)...)
	switch {
	case err != nil:
		p.logger.Error("Failed to run cargo command remotely", logging.Error(err))
		return exitcode.RemoteBuild
	case result.Signaled:
		p.logger.Error("Remote cargo command was terminated by a signal")
		return exitcode.RemoteBuild
	case !result.Success():
		p.logger.Warn("Remote cargo command failed", logging.Code(result.ExitCode))
		return result.ExitCode
	}

	return exitcode.Success
}

// sync runs a single rsync transfer; any failure is fatal with code.
func (p *Pipeline) sync(ctx context.Context, code int, what string, args []string) error {
	p.logger.Debug(transfer.Program, logging.Args(args))

	result, err := p.runner.Run(ctx, transfer.Program, args...)
	if err != nil {
		return exitcode.Wrap(code, fmt.Errorf("failed to %s: %w", what, err))
	}
	if !result.Success() {
		if result.Signaled {
			return exitcode.New(code, "failed to %s: %s was terminated by a signal", what, transfer.Program)
		}
		return exitcode.New(code, "failed to %s: %s exited with status %d", what, transfer.Program, result.ExitCode)
	}

	return nil
}
