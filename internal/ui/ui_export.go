package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/export"
)

// exportKind selects the format written by writeExport.
type exportKind int

const (
	exportVCard exportKind = iota
	exportICal
	exportPDF
	exportChart
)

func (k exportKind) fileName() string {
	switch k {
	case exportVCard:
		return config.ExportVCardName
	case exportICal:
		return config.ExportICalName
	case exportPDF:
		return config.ExportPDFName
	default:
		return config.ChartImageName
	}
}

// errNothingToExport is returned when the current search has no match.
var errNothingToExport = errors.New(config.ErrExportEmpty)

// writeExport encodes the current matches (all donors for the chart) in the given format.
func (app *GoDonorApp) writeExport(w io.Writer, kind exportKind) error {
	if kind == exportChart {
		return export.WriteGroupChart(w, app.session.Donors())
	}

	matches := app.session.Matches()
	if len(matches) == 0 {
		return errNothingToExport
	}

	now := app.Clock.Now()
	switch kind {
	case exportVCard:
		return export.WriteVCards(w, matches)
	case exportICal:
		return export.WriteCalendar(w, matches, now, app.eligibilityDays(), app.buildSummaryFormatter())
	default:
		return export.WritePDF(w, matches, now, app.eligibilityDays())
	}
}

// exportWithDialog asks for a destination and writes the export there.
func (app *GoDonorApp) exportWithDialog(kind exportKind) {
	if kind != exportChart && len(app.session.Matches()) == 0 {
		dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyErrExportEmpty), app.Window)
		return
	}

	// Render first so the file is only created when encoding succeeded.
	var buf bytes.Buffer
	if err := app.writeExport(&buf, kind); err != nil {
		app.showExportError(err)
		return
	}

	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			app.showExportError(err)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer func() { _ = wc.Close() }()

		if _, err := buf.WriteTo(wc); err != nil {
			app.showExportError(fmt.Errorf("%s: %w", config.ErrExportWrite, err))
			return
		}

		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, wc.URI().String())
		dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyMsgExportDone), app.Window)
	}, app.Window)
	d.SetFileName(kind.fileName())
	d.Show()
}

func (app *GoDonorApp) showExportError(err error) {
	slog.Error(config.ErrExportWrite,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyError, err)
	dialog.ShowError(err, app.Window)
}

// ShowChartWindow previews the blood group chart of the loaded donors.
// Like the settings window, only one instance is kept open.
func (app *GoDonorApp) ShowChartWindow() {
	if app.chartWindow != nil {
		app.chartWindow.RequestFocus()
		return
	}

	var buf bytes.Buffer
	if err := app.writeExport(&buf, exportChart); err != nil {
		app.showExportError(err)
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinChart))
	app.chartWindow = w

	img := canvas.NewImageFromReader(bytes.NewReader(buf.Bytes()), config.ChartImageName)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(config.ChartWidth/2, config.ChartHeight/2))

	save := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.exportWithDialog(exportChart)
	})

	w.SetContent(container.NewBorder(nil, container.NewCenter(save), nil, nil, img))
	w.Resize(fyne.NewSize(config.ChartWindowWidth, config.ChartWindowHeight))
	w.SetOnClosed(func() { app.chartWindow = nil })
	w.Show()
}
