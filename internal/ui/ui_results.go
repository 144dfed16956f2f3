package ui

import (
	"log/slog"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

// sheetOrder is the sort column used until a header is tapped.
const sheetOrder = -1

// resultsView renders the matches as a table with sortable headers.
// Group, name and location cells highlight the searched token.
type resultsView struct {
	app      *GoDonorApp
	table    *widget.Table
	rows     []engine.Donor
	criteria engine.Criteria

	sortCol int
	sortAsc bool
}

func newResultsView(app *GoDonorApp) *resultsView {
	v := &resultsView{app: app, sortCol: sheetOrder, sortAsc: true}

	v.table = widget.NewTable(
		func() (int, int) {
			return len(v.rows), config.ResultColumns
		},
		func() fyne.CanvasObject {
			rt := widget.NewRichTextWithText(config.TablePlaceholder)
			rt.Truncation = fyne.TextTruncateEllipsis
			return rt
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			rt := o.(*widget.RichText)
			if id.Row >= len(v.rows) {
				return
			}
			rt.Segments = v.cellSegments(v.rows[id.Row], id.Col)
			rt.Refresh()
		},
	)

	v.table.ShowHeaderRow = true
	v.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton("Header", func() {})
	}
	v.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		text := app.GetMsg(headerKey(id.Col))
		if id.Col == v.sortCol {
			if v.sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			v.toggleSort(id.Col)
			v.table.Refresh()
		}
	}

	v.table.SetColumnWidth(config.ColIDGroup, config.ColWidthGroup)
	v.table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	v.table.SetColumnWidth(config.ColIDLocation, config.ColWidthLocation)
	v.table.SetColumnWidth(config.ColIDMobile, config.ColWidthMobile)
	v.table.SetColumnWidth(config.ColIDEligible, config.ColWidthEligible)

	return v
}

func headerKey(col int) string {
	switch col {
	case config.ColIDGroup:
		return config.TKeyColGroup
	case config.ColIDName:
		return config.TKeyColName
	case config.ColIDLocation:
		return config.TKeyColLocation
	case config.ColIDMobile:
		return config.TKeyColMobile
	default:
		return config.TKeyColEligible
	}
}

// setRows replaces the displayed matches. The slice is copied so sorting
// never reorders the session's result.
func (v *resultsView) setRows(matches []engine.Donor, c engine.Criteria) {
	v.rows = append(v.rows[:0:0], matches...)
	v.criteria = c
	v.sort()
	v.table.Refresh()
}

// toggleSort flips the direction on the active column or activates another one.
func (v *resultsView) toggleSort(col int) {
	if v.sortCol == col {
		v.sortAsc = !v.sortAsc
	} else {
		v.sortCol = col
		v.sortAsc = true
	}
	v.sort()
}

func (v *resultsView) sort() {
	if v.sortCol == sheetOrder {
		return
	}

	now := v.app.Clock.Now()
	days := v.app.eligibilityDays()

	sort.SliceStable(v.rows, func(i, j int) bool {
		a, b := v.rows[i], v.rows[j]
		var less bool
		switch v.sortCol {
		case config.ColIDGroup:
			less = a.Group < b.Group
		case config.ColIDName:
			less = strings.ToLower(strings.TrimSpace(a.Name)) < strings.ToLower(strings.TrimSpace(b.Name))
		case config.ColIDLocation:
			less = strings.ToLower(a.Location) < strings.ToLower(b.Location)
		case config.ColIDMobile:
			less = a.Mobile < b.Mobile
		default:
			less = eligibleBefore(a.Eligibility(now, days), b.Eligibility(now, days))
		}

		if !v.sortAsc {
			return !less
		}
		return less
	})

	slog.Debug(config.LogMsgSorted,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySortCol, v.sortCol,
		config.LogKeySortAsc, v.sortAsc)
}

// eligibleBefore orders donors who can give soonest first.
// Unknown eligibility goes to the bottom in ascending order.
func eligibleBefore(a, b engine.Eligibility) bool {
	switch {
	case a.Known != b.Known:
		return a.Known
	case !a.Known:
		return false
	default:
		return a.NextEligible.Before(b.NextEligible)
	}
}

// cellSegments renders one table cell.
func (v *resultsView) cellSegments(d engine.Donor, col int) []widget.RichTextSegment {
	switch col {
	case config.ColIDGroup:
		return highlightSegments(d.Group, v.criteria.BloodGroup.String())
	case config.ColIDName:
		return highlightSegments(strings.TrimSpace(d.Name), v.criteria.Name)
	case config.ColIDLocation:
		return highlightSegments(d.Location, v.criteria.Location)
	case config.ColIDMobile:
		return plainSegments(d.Mobile)
	default:
		return plainSegments(v.app.eligibilityText(d))
	}
}

// eligibilityText is empty when the donor has no usable donation date.
func (app *GoDonorApp) eligibilityText(d engine.Donor) string {
	e := d.Eligibility(app.Clock.Now(), app.eligibilityDays())
	switch {
	case !e.Known:
		return ""
	case e.Eligible:
		if msg := app.GetMsg(config.TKeyEligibleYes); msg != config.TKeyEligibleYes {
			return msg
		}
		return config.FallbackEligibleYes
	default:
		if msg := app.GetMsg(config.TKeyEligibleNo); msg != config.TKeyEligibleNo {
			return msg
		}
		return config.FallbackEligibleNo
	}
}

func plainSegments(text string) []widget.RichTextSegment {
	return []widget.RichTextSegment{&widget.TextSegment{Text: text, Style: widget.RichTextStyleInline}}
}

// highlightSegments marks the first occurrence of token in bold primary colour.
func highlightSegments(text, token string) []widget.RichTextSegment {
	s := engine.Highlight(text, token)
	if s.Match == "" {
		return plainSegments(text)
	}

	var out []widget.RichTextSegment
	if s.Before != "" {
		out = append(out, &widget.TextSegment{Text: s.Before, Style: widget.RichTextStyleInline})
	}
	out = append(out, &widget.TextSegment{
		Text: s.Match,
		Style: widget.RichTextStyle{
			Inline:    true,
			ColorName: theme.ColorNamePrimary,
			TextStyle: fyne.TextStyle{Bold: true},
		},
	})
	if s.After != "" {
		out = append(out, &widget.TextSegment{Text: s.After, Style: widget.RichTextStyleInline})
	}
	return out
}
