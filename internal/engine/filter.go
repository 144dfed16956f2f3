package engine

import (
	"slices"
	"strings"
)

// Criteria holds the three independent search constraints.
// An unset blood group or a blank text field means "no constraint".
type Criteria struct {
	BloodGroup BloodGroup
	Location   string
	Name       string
}

// Active reports whether at least one criterion constrains the search.
func (c Criteria) Active() bool {
	return c.BloodGroup.IsSet() ||
		strings.TrimSpace(c.Location) != "" ||
		strings.TrimSpace(c.Name) != ""
}

// Match applies all present criteria to a donor (logical AND).
func (c Criteria) Match(d Donor) bool {
	if c.BloodGroup.IsSet() && !slices.Contains(d.values(), c.BloodGroup.String()) {
		return false
	}
	if strings.TrimSpace(c.Location) != "" &&
		!strings.Contains(strings.ToLower(d.Location), strings.ToLower(c.Location)) {
		return false
	}
	if strings.TrimSpace(c.Name) != "" &&
		!strings.Contains(strings.ToLower(strings.TrimSpace(d.Name)), strings.ToLower(c.Name)) {
		return false
	}
	return true
}

// values returns the row used for blood group containment.
// Records built by hand (without Cells) fall back to their named fields.
func (d Donor) values() []string {
	if d.Cells != nil {
		return d.Cells
	}
	return []string{d.Timestamp, d.Name, d.Group, d.Location, d.Mobile, d.LastDonation}
}

// ResultView tells the presentation layer what to show.
type ResultView int

const (
	// ViewPrompt: no criterion is set, nothing has been searched yet.
	ViewPrompt ResultView = iota
	// ViewEmpty: a search ran and matched nothing.
	ViewEmpty
	// ViewMatches: a search ran and matched at least one donor.
	ViewMatches
	// ViewLoading: the donor sheet is still being fetched.
	ViewLoading
	// ViewFailed: the donor sheet could not be loaded.
	ViewFailed
)

// Result is the derived view of the donors under the current criteria.
type Result struct {
	Matches  []Donor
	Searched bool
}

// View distinguishes "not searched" from "searched, zero matches".
func (r Result) View() ResultView {
	switch {
	case !r.Searched:
		return ViewPrompt
	case len(r.Matches) == 0:
		return ViewEmpty
	default:
		return ViewMatches
	}
}

// Filter returns the donors matching every present criterion, in sheet order.
// With no active criterion the result is empty and not marked as searched.
func Filter(donors []Donor, c Criteria) Result {
	if !c.Active() {
		return Result{}
	}

	matches := make([]Donor, 0)
	for _, d := range donors {
		if c.Match(d) {
			matches = append(matches, d)
		}
	}
	return Result{Matches: matches, Searched: true}
}
