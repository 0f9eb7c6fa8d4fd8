package remote

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BuildRoot is the directory below the remote home holding all build trees.
const BuildRoot = "remote-builds"

// BuildPath returns the remote directory a project is synchronized to.
//
// The id is the 64-bit xxHash of the absolute project root, so repeated
// builds of the same project reuse one remote tree. The result always ends
// in a slash so it can be used directly as an rsync destination.
func BuildPath(projectRoot string) string {
	return fmt.Sprintf("~/%s/%016x/", BuildRoot, xxhash.Sum64String(projectRoot))
}
