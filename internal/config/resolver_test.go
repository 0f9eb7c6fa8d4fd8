package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/filesystem"
	"github.com/stretchr/testify/require"
)

const (
	projectConfig = "/home/u/proj/.cargo-remote.toml"
	userConfig    = "/home/u/.config/cargo-remote/cargo-remote.toml"
)

func newTestResolver(fs filesystem.FileSystem) (*Resolver, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewResolver(fs, logger), &buf
}

func sources() []Source {
	return []Source{ProjectSource("/home/u/proj"), UserSource(userConfig)}
}

func TestResolve_CLIOverridesFiles(t *testing.T) {
	fileSetups := map[string]func(*filesystem.MockFileSystem){
		"no files": func(*filesystem.MockFileSystem) {},
		"project file": func(fs *filesystem.MockFileSystem) {
			fs.AddFile(projectConfig, []byte(`remote = "project-box"`))
		},
		"user file": func(fs *filesystem.MockFileSystem) {
			fs.AddFile(userConfig, []byte(`remote = "user-box"`))
		},
		"both files": func(fs *filesystem.MockFileSystem) {
			fs.AddFile(projectConfig, []byte(`remote = "project-box"`))
			fs.AddFile(userConfig, []byte(`remote = "user-box"`))
		},
		"malformed files": func(fs *filesystem.MockFileSystem) {
			fs.AddFile(projectConfig, []byte(`remote = `))
			fs.AddFile(userConfig, []byte(`[[[`))
		},
	}

	for name, setup := range fileSetups {
		t.Run(name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			setup(fs)

			resolver, _ := newTestResolver(fs)
			remote, err := resolver.Resolve("cli-box", sources()...)
			require.NoError(t, err)
			require.Equal(t, "cli-box", remote)
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	t.Run("project file before user file", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile(projectConfig, []byte("remote = \"project-box\"\n"))
		fs.AddFile(userConfig, []byte("remote = \"user-box\"\n"))

		resolver, _ := newTestResolver(fs)
		remote, err := resolver.Resolve("", sources()...)
		require.NoError(t, err)
		require.Equal(t, "project-box", remote)
	})

	t.Run("user file when project file is missing", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile(userConfig, []byte("remote = \"user-box\"\n"))

		resolver, logs := newTestResolver(fs)
		remote, err := resolver.Resolve("", sources()...)
		require.NoError(t, err)
		require.Equal(t, "user-box", remote)
		require.Contains(t, logs.String(), "config file not found")
		require.NotContains(t, logs.String(), "level=WARN")
	})

	t.Run("user file when project file has no remote", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile(projectConfig, []byte("remote = \"  \"\n"))
		fs.AddFile(userConfig, []byte("remote = \"user-box\"\n"))

		resolver, _ := newTestResolver(fs)
		remote, err := resolver.Resolve("  ", sources()...)
		require.NoError(t, err)
		require.Equal(t, "user-box", remote)
	})

	t.Run("malformed project file is a warning", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile(projectConfig, []byte("remote = [1, 2"))
		fs.AddFile(userConfig, []byte("remote = \"user-box\"\n"))

		resolver, logs := newTestResolver(fs)
		remote, err := resolver.Resolve("", sources()...)
		require.NoError(t, err)
		require.Equal(t, "user-box", remote)
		require.Contains(t, logs.String(), "level=WARN")
		require.Contains(t, logs.String(), "ignoring config file")
	})

	t.Run("wrong type is treated as malformed", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddFile(projectConfig, []byte("remote = 42\n"))

		resolver, logs := newTestResolver(fs)
		_, err := resolver.Resolve("", sources()...)
		require.Equal(t, exitcode.NoRemote, exitcode.From(err))
		require.Contains(t, logs.String(), "level=WARN")
	})
}

func TestResolve_NoRemote(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(userConfig, []byte("# nothing here\n[build]\njobs = 4\n"))

	resolver, _ := newTestResolver(fs)
	_, err := resolver.Resolve("", sources()...)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoRemote)
	require.Equal(t, exitcode.NoRemote, exitcode.From(err))
}

func TestLoad(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(projectConfig, []byte("remote = \"builder@10.0.0.5\"\n"))

	resolver, _ := newTestResolver(fs)

	file, err := resolver.Load(ProjectSource("/home/u/proj"))
	require.NoError(t, err)
	require.Equal(t, "builder@10.0.0.5", file.Remote)

	_, err = resolver.Load(UserSource(""))
	require.Error(t, err)
}

func TestSources(t *testing.T) {
	require.Equal(t, Source{Label: "project", Path: projectConfig}, ProjectSource("/home/u/proj"))
	require.Equal(t, "cargo-remote.toml", UserFileName)
	require.Contains(t, UserConfigPath(), "cargo-remote")
}
