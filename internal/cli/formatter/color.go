package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the color used for a section kind across tables and the grid.
func KindStyle(kind domain.SectionKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(kindColor(kind))
}

func kindColor(kind domain.SectionKind) lipgloss.Color {
	switch kind {
	case domain.KindLecture:
		return ColorYellow
	case domain.KindSeminar:
		return ColorPurple
	case domain.KindPractical:
		return ColorGreen
	default:
		return ColorFg
	}
}

// KindBadge returns the colored full name of a section kind, e.g. "Práctico".
func KindBadge(kind domain.SectionKind) string {
	return KindStyle(kind).Render(kind.Label())
}

// ProgramBadge renders "PS · Licenciatura en Psicología".
func ProgramBadge(p domain.Program) string {
	return StyleBold.Render(string(p)) + Dim(" · "+p.Name())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
