// Command expired runs the game, replays recordings headlessly and checks
// level files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
