package ui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
	"github.com/zalando/go-keyring"
)

//go:embed Icon.png
var appIconData []byte

// GoDonorApp encapsulates the UI state, preferences, and the donor session.
type GoDonorApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Loader engine.Loader
	Clock  engine.Clock // Injected clock for testability

	// Overrides from the command line and the environment win over preferences.
	SheetURLFlag string
	Env          config.EnvOverrides

	SupportedLanguages []string

	// session and loadSeq are only read and written on the UI goroutine.
	session engine.Session
	loadSeq int

	// spawn starts background work. Tests replace it to run loads inline.
	spawn func(func())

	form           *searchForm
	results        *resultsView
	settingsWindow fyne.Window
	chartWindow    fyne.Window
}

// searchForm holds the widgets of the search screen.
type searchForm struct {
	groupSelect   *widget.Select
	locationEntry *widget.Entry
	nameEntry     *widget.Entry
	status        *widget.Label
	retryBtn      *widget.Button
}

// NewGoDonorApp constructs the application and wires dependencies.
func NewGoDonorApp(a fyne.App, ctx context.Context, loader engine.Loader) *GoDonorApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &GoDonorApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Loader:             loader,
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
		session:            engine.NewSession(),
		spawn:              func(f func()) { go f() },
	}
}

// Run builds the main window, starts the donor load and blocks in the UI loop.
func (app *GoDonorApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.Reload()
	app.Window.ShowAndRun()
}

// buildMainWindow creates the main window on first use and (re)builds its
// content. It is called again after a language change.
func (app *GoDonorApp) buildMainWindow() {
	if app.Window == nil {
		app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
		app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
		app.Window.SetMaster()
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetMainMenu(app.buildMainMenu())
	app.Window.SetContent(app.buildContent())
	app.render()
}

// buildContent assembles the search form, the status line and the results table.
func (app *GoDonorApp) buildContent() fyne.CanvasObject {
	criteria := app.session.Criteria()
	f := &searchForm{}

	anyGroup := app.GetMsg(config.TKeyOptAnyGroup)
	options := []string{anyGroup}
	for _, g := range engine.BloodGroups {
		options = append(options, g.String())
	}
	f.groupSelect = widget.NewSelect(options, nil)
	if criteria.BloodGroup.IsSet() {
		f.groupSelect.SetSelected(criteria.BloodGroup.String())
	} else {
		f.groupSelect.SetSelected(anyGroup)
	}
	f.groupSelect.OnChanged = func(s string) {
		app.applyCriteria(app.session.WithBloodGroup(parseGroupOption(s)))
	}

	f.locationEntry = widget.NewEntry()
	f.locationEntry.SetText(criteria.Location)
	f.locationEntry.OnChanged = func(s string) {
		app.applyCriteria(app.session.WithLocation(s))
	}

	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetText(criteria.Name)
	f.nameEntry.OnChanged = func(s string) {
		app.applyCriteria(app.session.WithName(s))
	}

	f.status = widget.NewLabel("")
	f.status.Wrapping = fyne.TextWrapWord
	f.retryBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnRetry), theme.ViewRefreshIcon(), app.Reload)
	f.retryBtn.Hide()

	app.form = f
	app.results = newResultsView(app)

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblBloodGroup), f.groupSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblLocation), f.locationEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), f.nameEntry),
	)

	registerURL, _ := url.Parse(config.LinkRegister)
	footer := container.NewHBox(
		widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblOrganisation), config.OrgName, config.OrgUnit)),
		widget.NewHyperlink(app.GetMsg(config.TKeyLblBecomeADonor), registerURL),
	)

	top := container.NewVBox(form, container.NewBorder(nil, nil, nil, f.retryBtn, f.status))
	return container.NewPadded(container.NewBorder(top, footer, nil, nil, app.results.table))
}

// parseGroupOption maps a select option to a blood group. The localized
// "any" option, or anything unknown, means no constraint.
func parseGroupOption(s string) engine.BloodGroup {
	g, err := engine.ParseBloodGroup(s)
	if err != nil {
		return engine.BloodGroupAny
	}
	return g
}

// buildMainMenu constructs the File and Help menus.
func (app *GoDonorApp) buildMainMenu() *fyne.MainMenu {
	file := fyne.NewMenu(app.GetMsg(config.TKeyMenuFile),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRefresh), app.Reload),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuExportVCard), func() { app.exportWithDialog(exportVCard) }),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuExportICal), func() { app.exportWithDialog(exportICal) }),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuExportPDF), func() { app.exportWithDialog(exportPDF) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuChart), app.ShowChartWindow),
	)

	help := fyne.NewMenu(app.GetMsg(config.TKeyMenuHelp),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSource), func() { app.openLink(config.LinkSourceCode) }),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuReportBug), func() { app.openLink(config.LinkReportBug) }),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuRegister), func() { app.openLink(config.LinkRegister) }),
	)

	return fyne.NewMainMenu(file, help)
}

// openLink hands an external link to the operating system.
func (app *GoDonorApp) openLink(link string) {
	u, err := url.Parse(link)
	if err == nil {
		err = app.App.OpenURL(u)
	}
	if err != nil {
		slog.Error(config.ErrOpenURL,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyURL, link,
			config.LogKeyError, err)
	}
}

// Reload restarts the one-shot sheet load. It must run on the UI goroutine.
// Criteria typed so far are kept and applied once the donors arrive.
func (app *GoDonorApp) Reload() {
	seq, src := app.startLoad()
	app.spawn(func() { app.fetch(seq, src) })
}

// startLoad moves the session back to pending and returns the load ticket.
func (app *GoDonorApp) startLoad() (int, engine.SourceConfig) {
	app.loadSeq++
	app.session = app.session.Reloading()
	app.render()

	slog.Info(config.MsgLoadRequested,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyManual, app.loadSeq > 1)

	return app.loadSeq, app.loadSourceConfig()
}

// fetch runs the loader off the UI goroutine and hands the outcome back to it.
func (app *GoDonorApp) fetch(seq int, src engine.SourceConfig) {
	donors, err := app.Loader.Load(app.Ctx, src)
	fyne.Do(func() {
		app.finishLoad(seq, donors, err)
	})
}

// finishLoad applies a load outcome unless a newer load superseded it.
func (app *GoDonorApp) finishLoad(seq int, donors []engine.Donor, err error) {
	if seq != app.loadSeq {
		return
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error(config.MsgLoadFailed,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
		app.session = app.session.Failed(err)
	} else {
		app.session = app.session.Loaded(donors)
		slog.Info(config.MsgLoadFinished,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDonors, len(donors),
			config.LogKeyMatches, len(app.session.Matches()))
	}
	app.render()
}

// applyCriteria installs the next session snapshot and re-renders.
func (app *GoDonorApp) applyCriteria(next engine.Session) {
	app.session = next
	c := next.Criteria()
	slog.Debug(config.MsgCriteria,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyGroup, c.BloodGroup.String(),
		config.LogKeyLocation, c.Location,
		config.LogKeyName, c.Name,
		config.LogKeySearched, next.Result().Searched,
		config.LogKeyMatches, len(next.Matches()))
	app.render()
}

// render pushes the session into the widgets. No-op before the window exists.
func (app *GoDonorApp) render() {
	if app.form == nil {
		return
	}

	app.form.status.SetText(app.statusText())
	if app.session.View() == engine.ViewFailed {
		app.form.retryBtn.Show()
	} else {
		app.form.retryBtn.Hide()
	}
	app.results.setRows(app.session.Matches(), app.session.Criteria())
}

// statusText returns the localized status line for the current view.
func (app *GoDonorApp) statusText() string {
	switch app.session.View() {
	case engine.ViewLoading:
		return app.GetMsg(config.TKeyStatusLoading)
	case engine.ViewFailed:
		return app.GetMsgWith(config.TKeyStatusFailed, map[string]interface{}{"Error": app.session.Err()}, nil)
	case engine.ViewEmpty:
		return app.GetMsg(config.TKeyStatusEmpty)
	case engine.ViewMatches:
		count := len(app.session.Matches())
		msg := app.GetMsgWith(config.TKeyStatusMatches, map[string]interface{}{"Count": count}, count)
		if msg == config.TKeyStatusMatches {
			return fmt.Sprintf(config.FallbackMatches, count)
		}
		return msg
	default:
		return app.GetMsg(config.TKeyStatusPrompt)
	}
}

// loadSourceConfig assembles the loader configuration from overrides,
// preferences and the keyring.
func (app *GoDonorApp) loadSourceConfig() engine.SourceConfig {
	src := engine.SourceConfig{
		URL: config.ResolveSheetURL(app.SheetURLFlag, app.Env.SheetURL, app.Preferences.String(config.PrefSheetURL)),
	}

	if token, err := keyring.Get(config.KeyringService, config.KeyringTokenUser); err == nil {
		src.Token = token
	} else {
		slog.Debug(config.MsgTokenFail,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
	}

	return src
}

// eligibilityDays returns the donation interval in effect.
func (app *GoDonorApp) eligibilityDays() int {
	if app.Env.EligibilityDays != 0 {
		return config.ClampEligibilityDays(app.Env.EligibilityDays)
	}
	return config.ClampEligibilityDays(app.Preferences.IntWithFallback(config.PrefEligibilityDays, config.DefaultEligibilityDays))
}

// buildSummaryFormatter returns a closure that localizes calendar event titles.
func (app *GoDonorApp) buildSummaryFormatter() func(name, group string) string {
	return func(name, group string) string {
		msg := app.GetMsgWith(config.TKeyEvtSummary, map[string]interface{}{"Name": name, "Group": group}, nil)
		if msg == config.TKeyEvtSummary {
			return fmt.Sprintf(config.FallbackSummary, name, group)
		}
		return msg
	}
}
