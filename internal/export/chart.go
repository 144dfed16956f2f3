package export

import (
	"fmt"
	"io"

	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
	"github.com/wcharczuk/go-chart/v2"
)

// GroupCount is the number of donors of one blood group.
type GroupCount struct {
	Group engine.BloodGroup
	Count int
}

// GroupCounts tallies donors per blood group in display order.
// Every group is present, including those with no donor.
// Group cells that are not a known token are not counted.
func GroupCounts(donors []engine.Donor) []GroupCount {
	counts := make(map[engine.BloodGroup]int, len(engine.BloodGroups))
	for _, d := range donors {
		g, err := engine.ParseBloodGroup(d.Group)
		if err != nil || !g.IsSet() {
			continue
		}
		counts[g]++
	}

	out := make([]GroupCount, 0, len(engine.BloodGroups))
	for _, g := range engine.BloodGroups {
		out = append(out, GroupCount{Group: g, Count: counts[g]})
	}
	return out
}

// WriteGroupChart renders GroupCounts as a PNG bar chart.
func WriteGroupChart(w io.Writer, donors []engine.Donor) error {
	counts := GroupCounts(donors)

	// The chart refuses a zero-height range, so an empty set still gets an axis of 1.
	top := 1
	bars := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		top = max(top, c.Count)
		bars = append(bars, chart.Value{Label: c.Group.String(), Value: float64(c.Count)})
	}

	graph := chart.BarChart{
		Title:  config.ChartTitle,
		Width:  config.ChartWidth,
		Height: config.ChartHeight,
		Background: chart.Style{
			Padding: chart.Box{
				Top: 40,
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportChart, err)
	}
	return nil
}
