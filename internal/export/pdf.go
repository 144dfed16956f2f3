package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

// WritePDF renders the donors as a printable A4 table.
// The core fonts only cover cp1252; other runes are replaced by the translator.
func WritePDF(w io.Writer, donors []engine.Donor, now time.Time, intervalDays int) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(config.PDFTitle, true)
	pdf.SetCreator(config.AppName, true)
	pdf.SetCreationDate(now)
	pdf.AddPage()

	pdf.SetFont(config.PDFFont, "B", config.PDFTitleSize)
	pdf.CellFormat(0, 10, tr(config.PDFTitle+" - "+config.OrgName), "", 1, "L", false, 0, "")

	pdf.SetFont(config.PDFFont, "", config.PDFFontSize)
	pdf.CellFormat(0, 6, fmt.Sprintf(config.PDFGeneratedAt, now.Format(config.PDFDateFormat)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(config.PDFFont, "B", config.PDFFontSize)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range config.PDFHeaders {
		pdf.CellFormat(config.PDFColumnWidths[i], config.PDFRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(config.PDFFont, "", config.PDFFontSize)
	for _, d := range donors {
		cells := []string{
			d.Group,
			strings.TrimSpace(d.Name),
			d.Location,
			d.Mobile,
			eligibilityLabel(d.Eligibility(now, intervalDays)),
		}
		for i, c := range cells {
			pdf.CellFormat(config.PDFColumnWidths[i], config.PDFRowHeight, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportPDF, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFormat, "pdf",
		config.LogKeyCount, len(donors))
	return nil
}

func eligibilityLabel(e engine.Eligibility) string {
	switch {
	case !e.Known:
		return config.PDFUnknown
	case e.Eligible:
		return config.PDFEligibleYes
	default:
		return fmt.Sprintf(config.PDFEligibleOn, e.NextEligible.Format(config.DateFormatDisplay))
	}
}
