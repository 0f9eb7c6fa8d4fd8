package logging

import "log/slog"

// Canonical log field names.
const (
	KeyRemote    = "remote"
	KeyPath      = "path"
	KeySource    = "source"
	KeyProject   = "project"
	KeyCode      = "code"
	KeyArgs      = "args"
	KeyCommand   = "command"
	KeyBuildPath = "build_path"
	KeyError     = "error"
)

func Remote(host string) slog.Attr  { return slog.String(KeyRemote, host) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Source(label string) slog.Attr { return slog.String(KeySource, label) }
func Project(name string) slog.Attr { return slog.String(KeyProject, name) }
func Code(c int) slog.Attr          { return slog.Int(KeyCode, c) }
func Args(args []string) slog.Attr  { return slog.Any(KeyArgs, args) }
func Command(cmd string) slog.Attr  { return slog.String(KeyCommand, cmd) }
func BuildPath(p string) slog.Attr  { return slog.String(KeyBuildPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
