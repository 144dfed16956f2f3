package engine

import (
	"regexp"
	"strconv"
	"time"

	"github.com/tartampluch/go-donor/internal/config"
)

var donationDateRe = regexp.MustCompile(config.DonationDatePattern)

// Eligibility is derived from the last donation date and is never stored.
type Eligibility struct {
	// Known is false when the donor has no parseable donation date.
	// Nothing about eligibility is displayed in that case.
	Known        bool
	Eligible     bool
	LastDonation time.Time
	NextEligible time.Time
}

// ParseDonationDate reads a gviz date literal such as "Date(2024,0,28)".
// The month is zero-based. Out-of-range values normalise like time.Date.
func ParseDonationDate(cell string, loc *time.Location) (time.Time, bool) {
	m := donationDateRe.FindStringSubmatch(cell)
	if m == nil {
		return time.Time{}, false
	}

	// The pattern only captures digits, Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, loc), true
}

// NextEligibleDate adds the donation interval to the last donation date.
func NextEligibleDate(last time.Time, intervalDays int) time.Time {
	return last.AddDate(0, 0, config.ClampEligibilityDays(intervalDays))
}

// EligibilityAt evaluates a raw donation cell at now.
// The donor is eligible once now reaches the next eligible date.
func EligibilityAt(cell string, now time.Time, intervalDays int) Eligibility {
	last, ok := ParseDonationDate(cell, now.Location())
	if !ok {
		return Eligibility{}
	}

	next := NextEligibleDate(last, intervalDays)
	return Eligibility{
		Known:        true,
		Eligible:     !now.Before(next),
		LastDonation: last,
		NextEligible: next,
	}
}
