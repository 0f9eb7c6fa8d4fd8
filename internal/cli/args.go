package cli

import "strings"

// valueFlags are the remote flags that consume the following argument.
var valueFlags = map[string]bool{
	"-r": true, "--remote": true,
	"-b": true, "--build-env": true,
	"-d": true, "--rustup-default": true,
	"-e": true, "--env": true,
	"--manifest-path": true,
}

// normalizeArgs attaches a separate --copy-back value to its flag.
//
// pflag only accepts optional values in the attached form (--copy-back=file),
// but `--copy-back file` and `-c file` are accepted too: a following argument
// that does not start with "-" is taken as the file. Rewriting stops at the
// cargo command or "--", everything after it is passed through untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case i == 0 && arg == "remote":
			out = append(out, arg)
		case valueFlags[arg]:
			out = append(out, arg)
			if i+1 < len(args) {
				out = append(out, args[i+1])
				i++
			}
		case arg == "-c" || arg == "--copy-back":
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, arg+"="+args[i+1])
				i++
			} else {
				out = append(out, arg)
			}
		case strings.HasPrefix(arg, "-c") && !strings.HasPrefix(arg, "-c="):
			out = append(out, "-c="+strings.TrimPrefix(arg, "-c"))
		case !strings.HasPrefix(arg, "-"):
			return append(out, args[i:]...)
		default:
			out = append(out, arg)
		}
	}

	return out
}
