package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas/glyph"
)

func (c *CLI) backendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available font rasterizers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, name := range glyph.Backends() {
				line := StyleValue.Render(name)
				if name == glyph.DefaultBackend {
					line += " " + StyleDim.Render("(default)")
				}
				fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+line)
			}
		},
	}
}
