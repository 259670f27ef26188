// Package cli implements the glyphatlas command-line interface.
//
// The CLI scans a directory of icons and fonts, packs them into a single
// atlas and writes the export artifacts. It is built using cobra and logs
// through charmbracelet/log, which is also installed as the slog handler of
// the glyphatlas packages.
//
// # Commands
//
//   - build: pack a directory into an atlas and export it
//   - inspect: summarize a JSON manifest written by build
//   - backends: list the available font rasterizers
//
// # Configuration
//
// build reads an optional TOML file (--config). Flags set on the command line
// take precedence over the file.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "glyphatlas"

// Version is set at link time with -ldflags "-X".
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Pack icons and font glyphs into a single-channel texture atlas",
		Long:          `glyphatlas packs grayscale icons and the printable ASCII glyphs of TrueType/OpenType fonts into one bitmap and writes it as Go source, a raw pixel dump, a JSON manifest and a PNG preview.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			glyphatlas.SetLogger(slog.New(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.backendsCommand())

	return root
}

// Execute runs the CLI with os.Args, logging to stderr.
func Execute(ctx context.Context) error {
	c := New(os.Stderr, LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// =============================================================================
// Exit Status
// =============================================================================

// Exit codes returned by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitArgument = 2
	ExitIO       = 3
	ExitDecode   = 4
	ExitOverflow = 5
	ExitCanceled = 130
)

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	switch glyphatlas.KindOf(err) {
	case glyphatlas.KindArgument:
		return ExitArgument
	case glyphatlas.KindIO:
		return ExitIO
	case glyphatlas.KindDecode:
		return ExitDecode
	case glyphatlas.KindOverflow:
		return ExitOverflow
	default:
		return ExitFailure
	}
}
