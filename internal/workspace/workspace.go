package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jakoblorz/cargo-remote/internal/exitcode"
	"github.com/jakoblorz/cargo-remote/internal/filesystem"
	"github.com/jakoblorz/cargo-remote/internal/models"
)

// virtualManifestName is reported for manifests that only declare a [workspace].
const virtualManifestName = "workspace"

// Workspace locates the cargo project a build was invoked for.
type Workspace struct {
	fs           filesystem.FileSystem
	manifestPath string
	Project      *models.Project
}

// Option configures workspace behavior.
type Option func(*Workspace)

// WithManifestPath uses the given Cargo.toml instead of searching upwards
// from the working directory.
func WithManifestPath(path string) Option {
	return func(w *Workspace) {
		w.manifestPath = path
	}
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem, options ...Option) *Workspace {
	ws := &Workspace{fs: fs}

	for _, option := range options {
		option(ws)
	}

	return ws
}

// Detect finds the project root and the working directory relative to it.
//
// Every error returned carries the exit code of its failure kind.
func (w *Workspace) Detect() error {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return exitcode.Wrap(exitcode.CurrentDir, fmt.Errorf("failed to get working directory: %w", err))
	}

	manifestPath, err := w.findManifest(cwd)
	if err != nil {
		return err
	}

	root := filepath.Dir(manifestPath)

	name, err := w.readProjectName(manifestPath)
	if err != nil {
		return err
	}

	relative, err := relativeDir(root, cwd)
	if err != nil {
		return err
	}

	w.Project = models.NewProject(name, root, manifestPath, relative)
	return nil
}

// findManifest returns the absolute path of the Cargo.toml to build.
func (w *Workspace) findManifest(cwd string) (string, error) {
	if w.manifestPath == "" {
		manifest, found := findFileUp(w.fs, cwd, models.ManifestFile)
		if !found {
			return "", exitcode.New(exitcode.ManifestNotFound,
				"could not find %s in %s or any parent directory", models.ManifestFile, cwd)
		}
		return manifest, nil
	}

	manifest := w.manifestPath
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(cwd, manifest)
	}
	manifest = filepath.Clean(manifest)

	if filepath.Base(manifest) != models.ManifestFile {
		return "", exitcode.New(exitcode.ManifestNotFound,
			"the manifest-path must be a path to a %s file: %s", models.ManifestFile, w.manifestPath)
	}
	if !w.fs.IsFile(manifest) {
		return "", exitcode.New(exitcode.ManifestNotFound, "manifest path %s does not exist", w.manifestPath)
	}

	return manifest, nil
}

type cargoManifest struct {
	Package   *cargoPackage   `toml:"package"`
	Workspace *cargoWorkspace `toml:"workspace"`
}

type cargoPackage struct {
	Name string `toml:"name"`
}

type cargoWorkspace struct {
	Members []string `toml:"members"`
}

// readProjectName parses the manifest and returns the package name.
func (w *Workspace) readProjectName(manifestPath string) (string, error) {
	data, err := w.fs.ReadFile(manifestPath)
	if err != nil {
		return "", exitcode.Wrap(exitcode.Metadata, fmt.Errorf("could not read cargo metadata: %w", err))
	}

	var manifest cargoManifest
	if _, err := toml.Decode(string(data), &manifest); err != nil {
		return "", exitcode.Wrap(exitcode.Metadata, fmt.Errorf("could not read cargo metadata: failed to parse %s: %w", manifestPath, err))
	}

	switch {
	case manifest.Package != nil:
		if name := strings.TrimSpace(manifest.Package.Name); name != "" {
			return name, nil
		}
		return filepath.Base(filepath.Dir(manifestPath)), nil
	case manifest.Workspace != nil:
		return virtualManifestName, nil
	default:
		return "", exitcode.New(exitcode.NoProject, "no project found in %s", manifestPath)
	}
}

// relativeDir expresses cwd relative to root. A cwd outside of root (only
// possible with an explicit manifest path) builds from the root.
func relativeDir(root, cwd string) (string, error) {
	rel, err := filepath.Rel(root, cwd)
	if err != nil {
		return "", exitcode.Wrap(exitcode.RelativePath, fmt.Errorf("failed to compute path of %s relative to %s: %w", cwd, root, err))
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ".", nil
	}

	return rel, nil
}
