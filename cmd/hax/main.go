// Command hax is a terminal demo wired against the public hexboard,
// pathfinding and mcts surface. It contains no game logic of its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
