// Command cargo-remote builds cargo projects on a remote server.
//
// Installed on the PATH it is run by cargo as `cargo remote`:
//
//	cargo remote -r buildbox -c -- build --release
package main

import (
	"os"

	"github.com/jakoblorz/cargo-remote/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
