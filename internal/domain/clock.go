package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerDay = 24 * 60

	// DayCount is the number of weekday columns, Monday through Saturday.
	DayCount = 6
)

var dayLabels = [DayCount]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
var dayAbbrs = [DayCount]string{"Lun", "Mar", "Mie", "Jue", "Vie", "Sab"}

// DayLabel returns the Spanish weekday name for a 1-based day ordinal.
func DayLabel(day int) string {
	if day < 1 || day > DayCount {
		return fmt.Sprintf("día %d", day)
	}
	return dayLabels[day-1]
}

// DayAbbr returns the three-letter weekday abbreviation for a 1-based day ordinal.
func DayAbbr(day int) string {
	if day < 1 || day > DayCount {
		return strconv.Itoa(day)
	}
	return dayAbbrs[day-1]
}

// ParseDay accepts a day ordinal ("1".."6") or a Spanish day name or
// abbreviation, ignoring case and accents.
func ParseDay(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 || n > DayCount {
			return 0, fmt.Errorf("day %d out of range 1..%d", n, DayCount)
		}
		return n, nil
	}
	folded := FoldText(s)
	for i := 0; i < DayCount; i++ {
		if folded == FoldText(dayLabels[i]) || folded == FoldText(dayAbbrs[i]) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

// ParseClock converts "HH:MM" into minutes since midnight. "24:00" is
// accepted as the end of the day.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || len(m) != 2 {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	total := hours*60 + minutes
	if total > MinutesPerDay {
		return 0, fmt.Errorf("time %q is past the end of the day", s)
	}
	return total, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
