package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/cargo-remote/internal/filesystem"
)

// ProjectBuilder helps create cargo projects in a mock filesystem for tests
type ProjectBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewProjectBuilder creates a new ProjectBuilder with a package manifest at root
func NewProjectBuilder(root, name string) *ProjectBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(filepath.Join(root, "Cargo.toml"),
		[]byte(fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n", name)))
	fs.AddFile(filepath.Join(root, "src", "main.rs"), []byte("fn main() {}\n"))
	fs.SetCurrentDir(root)

	return &ProjectBuilder{
		fs:   fs,
		root: root,
	}
}

// AddMember adds a crate below the project root
func (pb *ProjectBuilder) AddMember(path, name string) *ProjectBuilder {
	memberRoot := filepath.Join(pb.root, path)
	pb.fs.AddFile(filepath.Join(memberRoot, "Cargo.toml"),
		[]byte(fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\n", name)))
	pb.fs.AddFile(filepath.Join(memberRoot, "src", "lib.rs"), nil)
	return pb
}

// AddDir adds a plain directory below the project root
func (pb *ProjectBuilder) AddDir(path string) *ProjectBuilder {
	pb.fs.AddDir(filepath.Join(pb.root, path))
	return pb
}

// ProjectConfig writes the project-local .cargo-remote.toml
func (pb *ProjectBuilder) ProjectConfig(content string) *ProjectBuilder {
	pb.fs.AddFile(filepath.Join(pb.root, ".cargo-remote.toml"), []byte(content))
	return pb
}

// Chdir sets the working directory relative to the project root
func (pb *ProjectBuilder) Chdir(path string) *ProjectBuilder {
	pb.fs.SetCurrentDir(filepath.Join(pb.root, path))
	return pb
}

// Build returns the mock filesystem
func (pb *ProjectBuilder) Build() *filesystem.MockFileSystem {
	return pb.fs
}
