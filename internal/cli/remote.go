package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/logging"
	"github.com/jakoblorz/cargo-remote/internal/models"
	"github.com/jakoblorz/cargo-remote/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RemoteCommand handles the remote command
type RemoteCommand struct {
	app  *App
	opts *models.Options
}

// NewRemoteCommand creates a new remote command
func NewRemoteCommand(app *App) *cobra.Command {
	cmd := &RemoteCommand{
		app:  app,
		opts: models.NewOptions(),
	}

	cobraCmd := &cobra.Command{
		Use:   "remote [flags] <command> [options...]",
		Short: "Run a cargo command on a remote build server",
		Long: `Run a cargo command on a remote build server.

The project containing the current directory is synchronized to
~/remote-builds/<id>/ on the server, where <id> is derived from the project
path. The cargo command runs in the same subdirectory it was started from.

The server is taken from --remote, or the "remote" key of .cargo-remote.toml
in the project root, or of cargo-remote/cargo-remote.toml in the user config
directory, in that order.

Options after <command> are passed to cargo unchanged. They are joined with
spaces and not escaped, so quote arguments containing shell metacharacters
for the remote shell yourself.`,
		Example: `  # Release build on buildbox, fetch the binary afterwards
  cargo remote -r buildbox -c release/app -- build --release

  # Run tests with the nightly toolchain and full target copy-back
  cargo remote -d nightly -c test -- --nocapture`,
		Args: cobra.MinimumNArgs(1),
		RunE: cmd.Run,
	}

	flags := cobraCmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVarP(&cmd.opts.Remote, "remote", "r", "", "remote ssh build server")
	flags.StringVarP(&cmd.opts.BuildEnv, "build-env", "b", models.DefaultBuildEnv,
		"set remote environment variables. RUST_BACKTRACE, CC, LIB, etc.")
	flags.StringVarP(&cmd.opts.RustupDefault, "rustup-default", "d", models.DefaultRustupChannel,
		"rustup default (stable|beta|nightly)")
	flags.StringVarP(&cmd.opts.EnvProfile, "env", "e", models.DefaultEnvProfile,
		"environment profile sourced on the remote server")
	flags.VarP(&copyBackValue{target: &cmd.opts.CopyBack}, "copy-back", "c",
		"transfer the target folder, or a file inside it, back to the local machine")
	flags.Lookup("copy-back").NoOptDefVal = copyBackWhole
	flags.BoolVar(&cmd.opts.NoCopyLock, "no-copy-lock", false,
		"don't transfer the Cargo.lock file back to the local machine")
	flags.BoolVarP(&cmd.opts.TransferHidden, "transfer-hidden", "h", false,
		"transfer hidden files and directories to the build server")
	flags.StringVar(&cmd.opts.ManifestPath, "manifest-path", "", "path to the Cargo.toml to build")
	flags.BoolVar(&cmd.opts.Debug, "debug", false, "enable debug logging")

	// -h is taken by --transfer-hidden
	flags.Bool("help", false, "help for remote")

	return cobraCmd
}

// Run executes the remote command
func (c *RemoteCommand) Run(cmd *cobra.Command, args []string) error {
	c.opts.Command = args[0]
	c.opts.Args = args[1:]

	logger := logging.New(c.app.stderr, c.opts.Debug)
	p := pipeline.New(c.app.fs, c.app.runner, logger, c.app.pipelineOptions...)

	status, err := p.Run(cmd.Context(), c.opts)
	if err != nil {
		logger.Error(err.Error(), logging.Code(exitcode.From(err)))
		return err
	}

	c.app.status = status
	return nil
}

// copyBackWhole is the value --copy-back takes when given without a file:
// the target directory itself.
const copyBackWhole = "."

// copyBackValue is a pflag.Value for the optional --copy-back argument.
type copyBackValue struct {
	target *models.CopyBack
}

var _ pflag.Value = (*copyBackValue)(nil)

func (v *copyBackValue) String() string {
	if v.target == nil || !v.target.Requested {
		return ""
	}
	return v.target.File
}

func (v *copyBackValue) Set(s string) error {
	file := strings.TrimSpace(s)
	clean := filepath.Clean(file)

	if clean != copyBackWhole && !filepath.IsLocal(clean) {
		return fmt.Errorf("copy-back file must be inside the target directory: %s", file)
	}

	v.target.Requested = true
	v.target.File = file
	if clean == copyBackWhole {
		v.target.File = ""
	}
	return nil
}

func (v *copyBackValue) Type() string {
	return "file"
}
