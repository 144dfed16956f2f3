package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParseDonationDate(t *testing.T) {
	got, ok := engine.ParseDonationDate("Date(2024,0,28)", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC), got, "Months are zero-based")

	got, ok = engine.ParseDonationDate("Date(2023,11,31,14,5,0)", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), got, "Time of day is ignored")

	for _, cell := range []string{"", "28/01/2024", "Date(2024,0)", "Date(x,0,1)", "date(2024,0,28)"} {
		_, ok := engine.ParseDonationDate(cell, time.UTC)
		assert.False(t, ok, cell)
	}
}

func TestEligibilityAt_DefaultInterval(t *testing.T) {
	const cell = "Date(2024,0,28)"
	interval := config.DefaultEligibilityDays

	e := engine.EligibilityAt(cell, day(2024, time.May, 28), interval)
	require.True(t, e.Known)
	assert.True(t, e.Eligible)
	assert.Equal(t, time.Date(2024, time.May, 27, 0, 0, 0, 0, time.UTC), e.NextEligible)

	e = engine.EligibilityAt(cell, day(2024, time.May, 27), interval)
	assert.True(t, e.Eligible, "Eligible from the next eligible date onward")

	e = engine.EligibilityAt(cell, day(2024, time.May, 26), interval)
	assert.False(t, e.Eligible)
	assert.True(t, e.Known)
}

func TestEligibilityAt_CustomInterval(t *testing.T) {
	e := engine.EligibilityAt("Date(2024,0,28)", day(2024, time.March, 1), 30)
	assert.True(t, e.Eligible)
	assert.Equal(t, time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), e.NextEligible)

	// Out-of-range intervals fall back to the default.
	e = engine.EligibilityAt("Date(2024,0,28)", day(2024, time.March, 1), 0)
	assert.Equal(t, time.Date(2024, time.May, 27, 0, 0, 0, 0, time.UTC), e.NextEligible)
}

func TestEligibilityAt_Unknown(t *testing.T) {
	e := engine.EligibilityAt("", day(2024, time.May, 28), config.DefaultEligibilityDays)
	assert.Equal(t, engine.Eligibility{}, e)
}

func TestDonor_Eligibility(t *testing.T) {
	clock := MockClock{CurrentTime: day(2024, time.June, 1)}
	d := engine.Donor{Name: "Alice", LastDonation: "Date(2024,0,28)"}

	e := d.Eligibility(clock.Now(), config.DefaultEligibilityDays)
	assert.True(t, e.Known)
	assert.True(t, e.Eligible)
	assert.Equal(t, time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC), e.LastDonation)
}
