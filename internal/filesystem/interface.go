package filesystem

// FileSystem provides the read-only file operations needed to locate a
// project and load its configuration. It exists so discovery can run against
// an in-memory tree in tests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	IsFile(path string) bool
	Getwd() (string, error)
}
