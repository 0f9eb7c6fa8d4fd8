package models

const (
	// DefaultBuildEnv enables backtraces for the remote build.
	DefaultBuildEnv = "RUST_BACKTRACE=1"

	// DefaultRustupChannel is the toolchain selected with `rustup default`.
	DefaultRustupChannel = "stable"

	// DefaultEnvProfile is sourced before anything else runs remotely.
	DefaultEnvProfile = "/etc/profile"
)

// CopyBack describes which build artifacts are retrieved after the build.
type CopyBack struct {
	// Requested is false when nothing should be copied back.
	Requested bool

	// File names a single file inside the target directory.
	// Empty means the whole target directory.
	File string
}

// Whole reports whether the complete target directory is retrieved.
func (c CopyBack) Whole() bool {
	return c.Requested && c.File == ""
}

// Options holds everything a single invocation was asked to do.
type Options struct {
	// Remote is the ssh host given on the command line, empty if none.
	Remote string

	// BuildEnv is prefixed to the remote cargo invocation (e.g. RUST_BACKTRACE=1).
	BuildEnv string

	// RustupDefault is the toolchain channel selected before building.
	RustupDefault string

	// EnvProfile is the script sourced on the remote host.
	EnvProfile string

	CopyBack       CopyBack
	NoCopyLock     bool
	TransferHidden bool
	Debug          bool

	// ManifestPath points at an explicit Cargo.toml instead of searching upwards.
	ManifestPath string

	// Command is the cargo subcommand, Args are passed through verbatim.
	Command string
	Args    []string
}

// NewOptions returns options populated with the defaults.
func NewOptions() *Options {
	return &Options{
		BuildEnv:      DefaultBuildEnv,
		RustupDefault: DefaultRustupChannel,
		EnvProfile:    DefaultEnvProfile,
	}
}
