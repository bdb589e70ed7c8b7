package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TimeRange formats a minute-of-day interval as "09:00–10:30".
func TimeRange(startMin, endMin int) string {
	return domain.FormatClock(startMin) + "–" + domain.FormatClock(endMin)
}

// MeetSlot formats a meeting as "Lun 09:00–10:30".
func MeetSlot(m domain.Meet) string {
	return domain.DayAbbr(m.DayNum) + " " + TimeRange(m.StartMin, m.EndMin)
}

// MeetSlots joins the slots of several meetings with commas.
func MeetSlots(meets []domain.Meet) string {
	if len(meets) == 0 {
		return Dim("sin horario")
	}
	parts := make([]string, len(meets))
	for i, m := range meets {
		parts[i] = MeetSlot(m)
	}
	return strings.Join(parts, ", ")
}

// Vacancies renders a vacancy count, or "--" when unknown.
func Vacancies(v *int) string {
	if v == nil {
		return Dim("--")
	}
	if *v <= 0 {
		return StyleRed.Render("0")
	}
	return fmt.Sprintf("%d", *v)
}

// Truncate shortens s to at most n visible cells, adding an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
