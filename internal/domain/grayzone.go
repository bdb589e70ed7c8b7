package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrInvalidGrayZone is returned when a gray zone has an out-of-range
	// day or a non-positive duration.
	ErrInvalidGrayZone = errors.New("invalid gray zone")

	// ErrInvalidMeet is returned when a meeting record breaks the catalog
	// invariants.
	ErrInvalidMeet = errors.New("invalid meet")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// storedValidate checks records read back from storage against the `stored`
// tags, which only require a weekday and a positive duration.
var storedValidate = newStoredValidator()

func newStoredValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("stored")
	return v
}

// GrayZone is a user-declared busy interval on the weekly grid. New zones
// must fit inside one day; stored ones only need a weekday and end > start.
type GrayZone struct {
	ID       string `json:"id"`
	DayNum   int    `json:"dayNum" validate:"min=1,max=6" stored:"min=1,max=6"`
	StartMin int    `json:"startMin" validate:"min=0,max=1440"`
	EndMin   int    `json:"endMin" validate:"max=1440,gtfield=StartMin" stored:"gtfield=StartMin"`
	Note     string `json:"note,omitempty"`
}

// NewGrayZone builds a gray zone with a fresh id and validates it.
func NewGrayZone(day, startMin, endMin int, note string) (GrayZone, error) {
	z := GrayZone{
		ID:       uuid.New().String(),
		DayNum:   day,
		StartMin: startMin,
		EndMin:   endMin,
		Note:     strings.TrimSpace(note),
	}
	if err := z.Validate(); err != nil {
		return GrayZone{}, err
	}
	return z, nil
}

func (z GrayZone) Validate() error {
	if err := validate.Struct(z); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrayZone, describeValidation(err))
	}
	return nil
}

// ValidateStored applies the read-time rule: day 1..6 and end after start.
func (z GrayZone) ValidateStored() error {
	if err := storedValidate.Struct(z); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrayZone, describeValidation(err))
	}
	return nil
}

// ValidateMeet checks a meeting's day ordinal and time range.
func ValidateMeet(m Meet) error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w %s: %s", ErrInvalidMeet, m.ID, describeValidation(err))
	}
	return nil
}

// ValidGrayZones keeps the stored zones that pass ValidateStored, preserving
// order.
func ValidGrayZones(zones []GrayZone) []GrayZone {
	out := make([]GrayZone, 0, len(zones))
	for _, z := range zones {
		if z.ValidateStored() == nil {
			out = append(out, z)
		}
	}
	return out
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
