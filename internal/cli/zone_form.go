package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/charmbracelet/huh"
)

// zoneInput holds the raw values of a gray zone, from flags or the form.
type zoneInput struct {
	Day  string
	From string
	To   string
	Note string
}

// toZone validates the input and builds a gray zone with a fresh id.
func (in zoneInput) toZone() (domain.GrayZone, error) {
	day, err := domain.ParseDay(in.Day)
	if err != nil {
		return domain.GrayZone{}, err
	}
	start, err := domain.ParseClock(in.From)
	if err != nil {
		return domain.GrayZone{}, err
	}
	end, err := domain.ParseClock(in.To)
	if err != nil {
		return domain.GrayZone{}, err
	}
	return domain.NewGrayZone(day, start, end, in.Note)
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	_, err := domain.ParseClock(s)
	return err
}

// validateEnd requires to to be a valid time after from. An invalid from is
// reported by its own field.
func validateEnd(from, to string) error {
	if err := validateClock(to); err != nil {
		return err
	}
	start, err := domain.ParseClock(from)
	if err != nil {
		return nil
	}
	if end, _ := domain.ParseClock(to); end <= start {
		return errors.New("must be after the start time")
	}
	return nil
}

// zoneForm returns a themed form that fills in. The end time is checked
// against the start time as it is typed.
func zoneForm(in *zoneInput) *huh.Form {
	days := make([]huh.Option[string], 0, domain.DayCount)
	for d := 1; d <= domain.DayCount; d++ {
		days = append(days, huh.NewOption(domain.DayLabel(d), strconv.Itoa(d)))
	}
	if in.Day == "" {
		in.Day = "1"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Día").
				Options(days...).
				Value(&in.Day),
			huh.NewInput().
				Title("Desde (HH:MM)").
				Placeholder("09:00").
				Value(&in.From).
				Validate(validateClock),
			huh.NewInput().
				Title("Hasta (HH:MM)").
				Placeholder("13:00").
				Value(&in.To).
				Validate(func(s string) error { return validateEnd(in.From, s) }),
			huh.NewInput().
				Title("Nota").
				Placeholder("trabajo, gimnasio…").
				Value(&in.Note),
		),
	).WithTheme(cursadaHuhTheme()).WithShowHelp(false)
}
