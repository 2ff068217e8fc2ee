// Keyboard input translation for X11.
package main

import (
	"os"

	"github.com/jmigpin/xkeyboard/cli"
)

func main() {
	os.Exit(cli.Execute())
}
