package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/filesystem"
	"github.com/jakoblorz/cargo-remote/internal/logging"
)

// ErrNoRemote is returned when no source defines a remote host.
var ErrNoRemote = errors.New("no remote build server was defined (use config file or --remote flag)")

// Resolver picks the remote host from the command line and config files.
type Resolver struct {
	fs     filesystem.FileSystem
	logger *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(fs filesystem.FileSystem, logger *slog.Logger) *Resolver {
	return &Resolver{fs: fs, logger: logger}
}

// Resolve returns the remote host to build on.
//
// A non-empty cliRemote wins without opening any file. Otherwise the first
// source with a non-empty remote wins. The error carries exitcode.NoRemote.
func (r *Resolver) Resolve(cliRemote string, sources ...Source) (string, error) {
	if remote := strings.TrimSpace(cliRemote); remote != "" {
		r.logger.Debug("using remote from command line", logging.Remote(remote))
		return remote, nil
	}

	for _, src := range sources {
		file, err := r.Load(src)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				r.logger.Debug("config file not found", logging.Source(src.Label), logging.Path(src.Path))
			} else {
				r.logger.Warn("ignoring config file", logging.Source(src.Label), logging.Path(src.Path), logging.Error(err))
			}
			continue
		}

		if remote := strings.TrimSpace(file.Remote); remote != "" {
			r.logger.Debug("using remote from config file",
				logging.Remote(remote), logging.Source(src.Label), logging.Path(src.Path))
			return remote, nil
		}

		r.logger.Debug("config file defines no remote", logging.Source(src.Label), logging.Path(src.Path))
	}

	return "", exitcode.Wrap(exitcode.NoRemote, ErrNoRemote)
}

// Load reads and decodes a single config file.
func (r *Resolver) Load(src Source) (*File, error) {
	if src.Path == "" {
		return nil, fmt.Errorf("%s config: %w", src.Label, fs.ErrNotExist)
	}

	data, err := r.fs.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}

	var file File
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src.Path, err)
	}

	return &file, nil
}
