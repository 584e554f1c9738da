package main

import (
	"fmt"
	"os"

	"github.com/asatex/kyuyokeisan-api/apps/cli/commands"
	"github.com/asatex/kyuyokeisan-api/apps/cli/render"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprint(os.Stderr, render.RenderError(err))
		os.Exit(1)
	}
}
