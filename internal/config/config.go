// Package config resolves the remote build host.
//
// The host comes from, in order of precedence, the --remote flag, the
// project-local .cargo-remote.toml and the user-global cargo-remote.toml in
// the platform config directory. Missing or malformed files never abort a
// build on their own; they are skipped with a log message.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// ProjectFileName is the project-local config file in the project root.
	ProjectFileName = ".cargo-remote.toml"

	// UserFileName is the user-global config file below the config directory.
	UserFileName = "cargo-remote.toml"

	appName = "cargo-remote"
)

// File is the content of a config file.
type File struct {
	Remote string `toml:"remote"`
}

// Source is a candidate config file.
type Source struct {
	Label string
	Path  string
}

// ProjectSource returns the project-local config file for a project root.
func ProjectSource(projectRoot string) Source {
	return Source{Label: "project", Path: filepath.Join(projectRoot, ProjectFileName)}
}

// UserSource returns the user-global config file at path.
func UserSource(path string) Source {
	return Source{Label: "user", Path: path}
}

// UserConfigPath returns the platform location of the user-global config file.
//
//	Linux:   $XDG_CONFIG_HOME/cargo-remote/cargo-remote.toml
//	macOS:   ~/Library/Application Support/cargo-remote/cargo-remote.toml
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, UserFileName)
}
