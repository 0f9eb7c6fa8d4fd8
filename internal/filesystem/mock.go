package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string

	// GetwdError is returned by Getwd when set.
	GetwdError error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// NewMockFileSystem creates a new MockFileSystem rooted at /
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:      make(map[string]*MockFile),
		currentDir: "/",
	}
	mfs.files["/"] = &MockFile{Mode: 0755 | fs.ModeDir, ModTime: time.Now(), IsDir: true}
	return mfs
}

// AddFile adds a file and its parent directories to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
	mfs.AddDir(filepath.Dir(cleanPath))
}

// AddDir adds a directory and its parents to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		if dir == "/" || dir == "." || dir == filepath.Dir(dir) {
			return
		}
	}
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(path)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) IsFile(path string) bool {
	file, exists := mfs.files[mfs.resolve(path)]
	return exists && !file.IsDir
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	if mfs.GetwdError != nil {
		return "", mfs.GetwdError
	}
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory, creating it if needed
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
	mfs.AddDir(mfs.currentDir)
}

func (mfs *MockFileSystem) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(mfs.currentDir, path)
}
