package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-donor/internal/engine"
)

func sampleDonors(t *testing.T) []engine.Donor {
	t.Helper()
	donors, err := engine.DecodeDonors([][]string{
		{"", "", "Alice", "A+", "Dhaka", "01711111111", "Date(2023,5,1)"},
		{"", "", "Bob", "B+", "Narsingdi", "01822222222"},
		{"", "", "  Rahim Uddin", "O-", "Old Dhaka", "01933333333"},
		{"", "", "Karim", "AB+", "Chattogram", "01544444444"},
	})
	require.NoError(t, err)
	return donors
}

func names(donors []engine.Donor) []string {
	out := make([]string, 0, len(donors))
	for _, d := range donors {
		out = append(out, d.Name)
	}
	return out
}

func TestFilter_NoCriteria(t *testing.T) {
	result := engine.Filter(sampleDonors(t), engine.Criteria{})

	assert.Empty(t, result.Matches)
	assert.False(t, result.Searched)
	assert.Equal(t, engine.ViewPrompt, result.View())

	// Whitespace-only text fields do not constrain the search.
	result = engine.Filter(sampleDonors(t), engine.Criteria{Location: "  ", Name: "\t"})
	assert.Equal(t, engine.ViewPrompt, result.View())
}

func TestFilter_SingleCriterion(t *testing.T) {
	tests := []struct {
		name     string
		criteria engine.Criteria
		want     []string
	}{
		{"BloodGroup", engine.Criteria{BloodGroup: engine.BPositive}, []string{"Bob"}},
		{"BloodGroupExactToken", engine.Criteria{BloodGroup: engine.APositive}, []string{"Alice"}},
		{"LocationSubstring", engine.Criteria{Location: "dhaka"}, []string{"Alice", "  Rahim Uddin"}},
		{"NameCaseInsensitive", engine.Criteria{Name: "KAR"}, []string{"Karim"}},
		{"NameIgnoresLeadingSpaces", engine.Criteria{Name: "rahim"}, []string{"  Rahim Uddin"}},
		{"NoMatch", engine.Criteria{Name: "zz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Filter(sampleDonors(t), tt.criteria)
			assert.True(t, result.Searched)
			assert.Equal(t, tt.want, names(result.Matches))
		})
	}
}

func TestFilter_CombinedCriteria(t *testing.T) {
	donors := sampleDonors(t)

	result := engine.Filter(donors, engine.Criteria{BloodGroup: engine.ONegative, Location: "dhaka"})
	assert.Equal(t, []string{"  Rahim Uddin"}, names(result.Matches))

	result = engine.Filter(donors, engine.Criteria{BloodGroup: engine.APositive, Name: "bob"})
	assert.Empty(t, result.Matches)
	assert.Equal(t, engine.ViewEmpty, result.View())
}

// TestFilter_BloodGroupAnyCell matches the group token against every cell of the
// row, so a token found in another column also selects the donor.
func TestFilter_BloodGroupAnyCell(t *testing.T) {
	donors, err := engine.DecodeDonors([][]string{
		{"", "B+", "Nadia", "A+", "Sylhet", "01600000000"},
		{"", "", "Omar", "A+", "Sylhet", "01600000001"},
	})
	require.NoError(t, err)

	result := engine.Filter(donors, engine.Criteria{BloodGroup: engine.BPositive})
	assert.Equal(t, []string{"Nadia"}, names(result.Matches))

	// Hand-built records without Cells still match on their group.
	result = engine.Filter([]engine.Donor{{Name: "Lina", Group: "O+"}}, engine.Criteria{BloodGroup: engine.OPositive})
	assert.Equal(t, []string{"Lina"}, names(result.Matches))
}

// TestFilter_Properties checks that every match satisfies each present criterion
// and that results keep sheet order.
func TestFilter_Properties(t *testing.T) {
	donors := sampleDonors(t)
	criteria := []engine.Criteria{
		{Location: "a"},
		{Name: "i"},
		{Location: "DHAKA", Name: "a"},
		{BloodGroup: engine.ABPositive, Location: "ram"},
	}

	for _, c := range criteria {
		result := engine.Filter(donors, c)
		require.True(t, result.Searched)

		last := -1
		for _, m := range result.Matches {
			if c.Location != "" {
				assert.Contains(t, strings.ToLower(m.Location), strings.ToLower(c.Location))
			}
			if c.Name != "" {
				assert.Contains(t, strings.ToLower(strings.TrimSpace(m.Name)), strings.ToLower(c.Name))
			}
			if c.BloodGroup.IsSet() {
				assert.Contains(t, m.Cells, c.BloodGroup.String())
			}

			idx := -1
			for i, d := range donors {
				if d.Name == m.Name {
					idx = i
				}
			}
			assert.Greater(t, idx, last, "Matches must keep sheet order")
			last = idx
		}
	}
}

// TestFilter_EndToEnd replays the canonical search on a single sheet row.
func TestFilter_EndToEnd(t *testing.T) {
	donors, err := engine.DecodeDonors([][]string{
		{"", "", "Alice", "A+", "Dhaka", "01712345678", "Date(2023,5,1)"},
	})
	require.NoError(t, err)

	session := engine.NewSession().Loaded(donors)
	assert.Equal(t, engine.ViewPrompt, session.View())

	session = session.WithBloodGroup(engine.APositive)
	assert.Equal(t, engine.ViewMatches, session.View())
	assert.Equal(t, []string{"Alice"}, names(session.Matches()))

	session = session.WithBloodGroup(engine.BPositive)
	assert.Equal(t, engine.ViewEmpty, session.View())
	assert.Empty(t, session.Matches())
}
