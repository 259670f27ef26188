// Command glyphatlas packs icons and font glyphs into a texture atlas.
//
// Usage:
//
//	glyphatlas build assets -o gen --package icons
//	glyphatlas inspect gen/atlas.json
//	glyphatlas backends
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/glyphatlas/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		cancel()
		os.Exit(cli.ExitCode(err))
	}
}
