package models

// ManifestFile is the file that marks a project root.
const ManifestFile = "Cargo.toml"

// Project represents the cargo project a build was invoked for.
type Project struct {
	// Name is the package name, or "workspace" for a virtual manifest
	Name string

	// RootPath is the absolute path to the directory containing Cargo.toml
	RootPath string

	// ManifestPath is the path to Cargo.toml
	ManifestPath string

	// RelativeDir is the working directory relative to RootPath ("." at the root)
	RelativeDir string
}

// NewProject creates a new Project instance
func NewProject(name, rootPath, manifestPath, relativeDir string) *Project {
	return &Project{
		Name:         name,
		RootPath:     rootPath,
		ManifestPath: manifestPath,
		RelativeDir:  relativeDir,
	}
}
