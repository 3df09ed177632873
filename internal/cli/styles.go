package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/tacogips/dotool/internal/toolmanifest"
)

// Color palette used for tables and headers.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for table headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// CellStyle pads table cells.
	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// CmdStyle is for command names.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// PathStyle is for manifest paths.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// applyTableColor switches lipgloss rendering to plain ASCII when color is off.
func applyTableColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Column indexes of the tool table.
const (
	colPackage = iota
	colVersion
	colCommands
	colManifest
)

// renderToolTable renders packages as a table with one row per package.
func renderToolTable(packages []toolmanifest.Package) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(PathStyle).
		Headers("Package Id", "Version", "Commands", "Manifest").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			switch col {
			case colCommands:
				return CellStyle.Foreground(ColorHighlight)
			case colManifest:
				return CellStyle.Foreground(ColorMuted)
			default:
				return CellStyle
			}
		})

	for _, p := range packages {
		t.Row(p.PackageID, p.Version, strings.Join(p.CommandNames, ", "), p.ManifestPath)
	}
	return t.String()
}
