package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

// SummaryFunc builds the event title for a donor. It lets the UI inject
// localized strings.
type SummaryFunc func(name, group string) string

// WriteCalendar writes one all-day event per donor, placed on the date the
// donor becomes eligible again. Donors without a parseable donation date are
// skipped. A nil summary falls back to an English title.
func WriteCalendar(w io.Writer, donors []engine.Donor, now time.Time, intervalDays int, summary SummaryFunc) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, d := range donors {
		e := d.Eligibility(now, intervalDays)
		if !e.Known {
			slog.Debug(config.MsgSkipNoDate,
				config.LogKeyComponent, config.CompExport,
				config.LogKeyValue, d.LastDonation)
			continue
		}

		name := strings.TrimSpace(d.Name)
		title := fmt.Sprintf(config.FallbackSummary, name, d.Group)
		if summary != nil {
			title = summary(name, d.Group)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, d.UID(), e.NextEligible.Format("20060102"), config.ICalDomain))
		event.Props.SetText(config.PropSummary, title)
		if location := strings.TrimSpace(d.Location); location != "" {
			event.Props.SetText(config.PropDescr, fmt.Sprintf(config.FormatNoteLocation, location))
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(e.NextEligible)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
		}
		return nil
	}

	// Encode into a buffer so a failure never leaves half a calendar behind.
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportICal, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFormat, "ical",
		config.LogKeyCount, len(cal.Children))
	return nil
}
