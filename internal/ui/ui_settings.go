package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/zalando/go-keyring"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect       *widget.Select
	urlEntry         *widget.Entry
	tokenEntry       *widget.Entry
	entryEligibility *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *GoDonorApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	// --- Source Section ---
	itemURL := widget.NewFormItem(app.GetMsg(config.TKeyLblSheetURL), sw.urlEntry)
	itemURL.HintText = app.GetMsg(config.TKeyHelpSheetURL)

	itemToken := widget.NewFormItem(app.GetMsg(config.TKeyLblToken), sw.tokenEntry)
	itemToken.HintText = app.GetMsg(config.TKeyHelpToken)

	sourceCard := widget.NewCard(app.GetMsg(config.TKeyLblSource), "", widget.NewForm(itemURL, itemToken))

	// --- General Section ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	widDays := container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblDays)), sw.entryEligibility)
	itemDays := widget.NewFormItem(app.GetMsg(config.TKeyLblEligibility), widDays)
	itemDays.HintText = app.GetMsg(config.TKeyHelpEligibility)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemDays))

	// --- Actions ---
	saveAction := func() {
		if err := sw.entryEligibility.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		sourceCard,
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the editable fields pre-filled from preferences and the keyring.
func (app *GoDonorApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.urlEntry = widget.NewEntry()
	sw.urlEntry.SetText(app.Preferences.String(config.PrefSheetURL))
	sw.urlEntry.PlaceHolder = config.PlaceholderURL

	sw.tokenEntry = widget.NewPasswordEntry()
	if token, err := keyring.Get(config.KeyringService, config.KeyringTokenUser); err == nil {
		sw.tokenEntry.SetText(token)
	}

	// Eligibility interval: numerical only, strictly validated (1-365 days).
	sw.entryEligibility = NewNumericalEntry()
	sw.entryEligibility.SetInt(app.Preferences.IntWithFallback(config.PrefEligibilityDays, config.DefaultEligibilityDays))
	sw.entryEligibility.Validator = app.validateEligibilityDays

	return sw
}

// validateEligibilityDays checks the interval entered in the settings window.
func (app *GoDonorApp) validateEligibilityDays(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrDaysReq))
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrDaysNum))
	}
	if days < config.MinEligibilityDays || days > config.MaxEligibilityDays {
		return errors.New(app.GetMsg(config.TKeyErrDaysRange))
	}
	return nil
}

// saveSettings persists the data, relabels the main window and reloads the sheet.
func (app *GoDonorApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefSheetURL, sw.urlEntry.Text)

	if days, err := sw.entryEligibility.Int(); err == nil {
		app.Preferences.SetInt(config.PrefEligibilityDays, config.ClampEligibilityDays(days))
	}

	// An empty token field removes the stored credential.
	if sw.tokenEntry.Text != "" {
		if err := keyring.Set(config.KeyringService, config.KeyringTokenUser, sw.tokenEntry.Text); err != nil {
			slog.Error(config.ErrKeyringSave, config.LogKeyError, err, config.LogKeyComponent, config.CompUISet)
		}
	} else if err := keyring.Delete(config.KeyringService, config.KeyringTokenUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		slog.Error(config.ErrKeyringDelete, config.LogKeyError, err, config.LogKeyComponent, config.CompUISet)
	}

	app.UpdateLocalizer()
	if app.Window != nil {
		app.buildMainWindow()
	}
	app.Reload()
}
