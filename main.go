package main

import (
	"fmt"
	"os"

	"github.com/iburimskiy/distance-field-sketches/internal/cli"
	"github.com/iburimskiy/distance-field-sketches/internal/game"
)

func main() {
	root, closeFn := cli.Root(game.Run)
	err := root.Execute()
	closeFn()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
