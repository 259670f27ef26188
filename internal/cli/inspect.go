package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas/export"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var glyphs bool

	cmd := &cobra.Command{
		Use:   "inspect <manifest.json>",
		Short: "Summarize an atlas manifest",
		Long:  `Read a JSON manifest written by 'glyphatlas build' and print its icons and fonts.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := export.ReadManifestFile(args[0])
			if err != nil {
				return err
			}
			printManifest(cmd.OutOrStdout(), m, glyphs)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&glyphs, "glyphs", "g", false, "list every glyph of every font")
	return cmd
}
