package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/filesystem"
	"github.com/jakoblorz/cargo-remote/internal/pipeline"
	"github.com/jakoblorz/cargo-remote/internal/runner"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X .../internal/cli.version=..."
var version = "dev"

// App wires the command line to the build pipeline.
type App struct {
	fs              filesystem.FileSystem
	runner          runner.Runner
	stderr          io.Writer
	pipelineOptions []pipeline.Option

	// status is the exit code of the remote cargo command after a run
	status int
}

// NewApp creates a new App. Logs and errors are written to stderr.
func NewApp(fs filesystem.FileSystem, r runner.Runner, stderr io.Writer, options ...pipeline.Option) *App {
	return &App{
		fs:              fs,
		runner:          r,
		stderr:          stderr,
		pipelineOptions: options,
	}
}

// NewRootCommand creates the root command.
//
// Cargo runs external subcommands as `cargo-remote remote <args>`, so the
// root is named after cargo and the work happens in the remote subcommand.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cargo",
		Short: "Build cargo projects on a remote server",
		Long: `Synchronizes a cargo project to a remote server with rsync, runs a
cargo command there over ssh and copies the results back.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetErr(a.stderr)
	rootCmd.AddCommand(NewRemoteCommand(a))

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	a.status = exitcode.Success

	rootCmd := a.NewRootCommand()
	rootCmd.SetArgs(normalizeArgs(args))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// pipeline errors are logged where they happen
		if exitcode.From(err) == exitcode.Usage {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return exitcode.From(err)
	}

	return a.status
}

// Execute runs cargo-remote against the real filesystem, rsync and ssh.
func Execute() int {
	app := NewApp(filesystem.NewOSFileSystem(), runner.NewOSRunner(), os.Stderr)
	return app.Execute(context.Background(), os.Args[1:])
}
