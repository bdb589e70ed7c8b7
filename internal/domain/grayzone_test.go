package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrayZone_Valid(t *testing.T) {
	z, err := NewGrayZone(2, 600, 660, "  trabajo ")
	require.NoError(t, err)
	assert.NotEmpty(t, z.ID)
	assert.Equal(t, 2, z.DayNum)
	assert.Equal(t, "trabajo", z.Note)
}

func TestNewGrayZone_UniqueIDs(t *testing.T) {
	a, err := NewGrayZone(1, 480, 540, "")
	require.NoError(t, err)
	b, err := NewGrayZone(1, 480, 540, "")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGrayZone_Validate_RejectsBadDay(t *testing.T) {
	for _, day := range []int{0, 7, -1} {
		err := GrayZone{ID: "z", DayNum: day, StartMin: 480, EndMin: 540}.Validate()
		require.Error(t, err, "day=%d", day)
		assert.ErrorIs(t, err, ErrInvalidGrayZone)
		assert.Contains(t, err.Error(), "DayNum")
	}
}

func TestGrayZone_Validate_RejectsNonPositiveDuration(t *testing.T) {
	for _, end := range []int{540, 500} {
		err := GrayZone{ID: "z", DayNum: 1, StartMin: 540, EndMin: end}.Validate()
		require.Error(t, err, "end=%d", end)
		assert.ErrorIs(t, err, ErrInvalidGrayZone)
		assert.Contains(t, err.Error(), "EndMin")
	}
}

func TestValidGrayZones_DropsInvalid(t *testing.T) {
	zones := []GrayZone{
		{ID: "ok1", DayNum: 1, StartMin: 480, EndMin: 540},
		{ID: "bad-day", DayNum: 7, StartMin: 480, EndMin: 540},
		{ID: "bad-range", DayNum: 3, StartMin: 600, EndMin: 600},
		{ID: "ok2", DayNum: 6, StartMin: 0, EndMin: 1440},
	}
	got := ValidGrayZones(zones)
	require.Len(t, got, 2)
	assert.Equal(t, "ok1", got[0].ID)
	assert.Equal(t, "ok2", got[1].ID)
}

func TestValidGrayZones_KeepsStoredZonesPastMidnightBounds(t *testing.T) {
	zones := []GrayZone{
		{ID: "late", DayNum: 5, StartMin: 1380, EndMin: 1500},
		{ID: "early", DayNum: 2, StartMin: -30, EndMin: 60},
		{ID: "inverted", DayNum: 2, StartMin: 1500, EndMin: 1380},
	}
	got := ValidGrayZones(zones)
	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
	assert.Equal(t, "early", got[1].ID)

	// Creation still requires the zone to fit in one day.
	assert.ErrorIs(t, zones[0].Validate(), ErrInvalidGrayZone)
	assert.NoError(t, zones[0].ValidateStored())
}

func TestValidateMeet(t *testing.T) {
	good := Meet{ID: "m1", SectionID: "s1", DayNum: 1, StartMin: 540, EndMin: 630}
	assert.NoError(t, ValidateMeet(good))

	bad := good
	bad.EndMin = 500
	err := ValidateMeet(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMeet)

	noSection := good
	noSection.SectionID = ""
	assert.ErrorIs(t, ValidateMeet(noSection), ErrInvalidMeet)
}
