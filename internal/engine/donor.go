package engine

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-donor/internal/config"
)

// Donor is one row of the donor sheet, decoded once at load time.
type Donor struct {
	Timestamp    string
	Name         string
	Group        string
	Location     string
	Mobile       string
	LastDonation string // raw gviz literal, e.g. "Date(2024,0,28)"

	// Cells keeps the full ordered row. The blood group criterion is matched
	// against every value of the row, not only the group column.
	Cells []string
}

// RowError reports a sheet row whose shape does not fit the donor layout.
type RowError struct {
	Row   int // zero-based data row index
	Cells int
	Want  int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d has %d cells, want at least %d", config.ErrDecodeDonors, e.Row, e.Cells, e.Want)
}

// DecodeDonors maps decoded sheet rows onto Donor records.
// It fails on the first row that is too short instead of letting
// positional access pick up the wrong columns.
func DecodeDonors(rows [][]string) ([]Donor, error) {
	donors := make([]Donor, 0, len(rows))
	for i, row := range rows {
		if len(row) < config.MinRowCells {
			return nil, &RowError{Row: i, Cells: len(row), Want: config.MinRowCells}
		}

		d := Donor{
			Timestamp: row[config.ColTimestamp],
			Name:      row[config.ColName],
			Group:     row[config.ColBloodGroup],
			Location:  row[config.ColLocation],
			Mobile:    row[config.ColMobile],
			Cells:     row,
		}
		if len(row) > config.ColLastDonation {
			d.LastDonation = row[config.ColLastDonation]
		}
		donors = append(donors, d)
	}
	return donors, nil
}

// Eligibility derives the donation eligibility of the donor at now.
func (d Donor) Eligibility(now time.Time, intervalDays int) Eligibility {
	return EligibilityAt(d.LastDonation, now, intervalDays)
}

// UID returns a stable identifier derived from the donor's name and mobile number.
func (d Donor) UID() string {
	input := fmt.Sprintf(config.FormatHashInput, strings.TrimSpace(d.Name), strings.TrimSpace(d.Mobile), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
