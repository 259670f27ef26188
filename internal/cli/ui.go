package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gogpu/glyphatlas/export"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Output Helpers
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}

// newTable returns a table with the package's header and cell styles.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(headers...)
}

func itoa(vs ...int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// =============================================================================
// Build Summary
// =============================================================================

func printBuildSummary(w io.Writer, res *buildResult) {
	a := res.Atlas
	printSuccess(w, "Built %s atlas with %s icons and %s fonts (%s used)",
		StyleNumber.Render(fmt.Sprintf("%dx%d", a.Width(), a.Height())),
		StyleNumber.Render(strconv.Itoa(len(a.Icons()))),
		StyleNumber.Render(strconv.Itoa(len(a.Fonts()))),
		StyleNumber.Render(percent(a.Utilization())))

	for _, path := range []string{res.Export.Source, res.Export.Raw, res.Export.Manifest, res.Export.Preview} {
		if path != "" {
			printFile(w, path)
		}
	}
}

// =============================================================================
// Manifest Summary
// =============================================================================

func printManifest(w io.Writer, m *export.Manifest, glyphs bool) {
	fmt.Fprintln(w, StyleTitle.Render("Atlas "+m.ID))
	printKeyValue(w, "size", fmt.Sprintf("%dx%d", m.Width, m.Height))
	printKeyValue(w, "padding", strconv.Itoa(m.Padding))
	printKeyValue(w, "used", percent(float64(m.UsedArea())/float64(m.Width*m.Height)))
	if m.Raw != "" {
		printKeyValue(w, "raw", m.Raw)
	}
	if m.Preview != "" {
		printKeyValue(w, "preview", m.Preview)
	}

	if len(m.Icons) > 0 {
		t := newTable("icon", "x", "y", "w", "h")
		for _, ic := range m.Icons {
			t.Row(append([]string{ic.Name}, itoa(ic.Rect.X, ic.Rect.Y, ic.Rect.Width, ic.Rect.Height)...)...)
		}
		fmt.Fprintln(w, t.Render())
	}

	if len(m.Fonts) > 0 {
		t := newTable("font", "size", "line")
		for _, f := range m.Fonts {
			t.Row(append([]string{f.Name}, itoa(f.FontSize, f.LineSize)...)...)
		}
		fmt.Fprintln(w, t.Render())
	}

	if !glyphs {
		return
	}
	for _, f := range m.Fonts {
		fmt.Fprintln(w, StyleTitle.Render(f.Name))
		t := newTable("char", "x", "y", "w", "h", "offset", "advance")
		for _, g := range f.Glyphs {
			row := []string{strconv.Quote(g.Char)}
			row = append(row, itoa(g.Rect.X, g.Rect.Y, g.Rect.Width, g.Rect.Height)...)
			row = append(row,
				fmt.Sprintf("%d,%d", g.Offset[0], g.Offset[1]),
				fmt.Sprintf("%d,%d", g.Advance[0], g.Advance[1]))
			t.Row(row...)
		}
		fmt.Fprintln(w, t.Render())
	}
}
