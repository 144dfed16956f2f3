package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Donor/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName          = "Go Donor"
	AppID            = "com.github.tartampluch.go-donor"
	KeyringService   = "com.github.tartampluch.go-donor"
	KeyringTokenUser = "sheet-access-token"
	LogFileName      = "app.log"
	IconFile         = "Icon.png"
	OrgName          = "Badhon"
	OrgUnit          = "Narsingdi Govt. College"
)

// External links shown in the Help menu.
const (
	LinkSourceCode = "https://github.com/sharifulbb10/quick-blood-donor-finder-badhon-ngc"
	LinkReportBug  = "mailto:sharifulbb10@gmail.com?subject=Found%20a%20problem%20in%20your%20quick%20donor%20finder"
	LinkRegister   = "https://forms.gle/JrGsH6vggNQPkU2a9"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Environment
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagSheetURL     = "sheet-url"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescSheetURL = "Override the spreadsheet export URL"
	MsgVersionOutput = "%s version %s, commit %s, built %s (%s/%s)\n"

	// EnvPrefix namespaces environment overrides (GODONOR_SHEET_URL, ...).
	EnvPrefix = "GODONOR"
)

// -----------------------------------------------------------------------------
// Data Source (Google Visualization export)
// -----------------------------------------------------------------------------

const (
	DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1Oc03vJPT66H68EJJ2fa3AT3iDmxaRZQ6Re4KrbG2lFM/gviz/tq?tqx=out:json"

	// The gviz response is "/*O_o*/\ngoogle.visualization.Query.setResponse(" + JSON + ");".
	GvizPrefixLen = 47
	GvizSuffixLen = 2

	GvizPathRows  = "table.rows"
	GvizPathCells = "c"
	GvizPathValue = "v"
)

// Row layout of the donor sheet.
const (
	ColTimestamp    = 0
	ColName         = 2
	ColBloodGroup   = 3
	ColLocation     = 4
	ColMobile       = 5
	ColLastDonation = 6

	// MinRowCells is the number of cells a row needs to carry a mobile number.
	MinRowCells = ColMobile + 1
)

// -----------------------------------------------------------------------------
// Business Logic Defaults
// -----------------------------------------------------------------------------

const (
	DefaultEligibilityDays = 120
	MinEligibilityDays     = 1
	MaxEligibilityDays     = 365
	DefaultLanguage        = "en"

	// DonationDatePattern matches the gviz date literal, month is zero-based.
	DonationDatePattern = `Date\((\d{4}),\s*(\d{1,2}),\s*(\d{1,2})(?:,[^)]*)?\)`

	UIDSalt         = "go-donor-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 860
	MainWindowHeight    = 560
	SettingsWindowWidth = 560
	ChartWindowWidth    = 640
	ChartWindowHeight   = 420

	// Preference Keys
	PrefSheetURL        = "sheet_url"
	PrefLanguage        = "language"
	PrefEligibilityDays = "eligibility_days"
	PrefLastRun         = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "bn"}

// Results table.
const (
	ColIDGroup    = 0
	ColIDName     = 1
	ColIDLocation = 2
	ColIDMobile   = 3
	ColIDEligible = 4
	ResultColumns = 5

	ColWidthGroup    = 90
	ColWidthName     = 190
	ColWidthLocation = 180
	ColWidthMobile   = 130
	ColWidthEligible = 230

	TablePlaceholder = "Cell Content"
	LogMsgSorted     = "Results sorted"

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"

	LayoutColumnsDouble = 2
)

// Export file names.
const (
	ExportVCardName = "donors.vcf"
	ExportICalName  = "eligibility.ics"
	ExportPDFName   = "donors.pdf"
	ChartImageName  = "blood-groups.png"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyWinSettings     = "win_settings_title"
	TKeyWinChart        = "win_chart_title"
	TKeyLblBloodGroup   = "lbl_blood_group"
	TKeyLblLocation     = "lbl_location"
	TKeyLblName         = "lbl_donor_name"
	TKeyOptAnyGroup     = "opt_any_blood_group"
	TKeyStatusLoading   = "status_loading"
	TKeyStatusFailed    = "status_failed"
	TKeyStatusPrompt    = "status_prompt"
	TKeyStatusEmpty     = "status_empty"
	TKeyStatusMatches   = "status_matches" // Requires Count
	TKeyBtnRetry        = "btn_retry"
	TKeyColGroup        = "col_blood_group"
	TKeyColName         = "col_name"
	TKeyColLocation     = "col_location"
	TKeyColMobile       = "col_mobile"
	TKeyColEligible     = "col_eligible"
	TKeyEligibleYes     = "eligible_yes"
	TKeyEligibleNo      = "eligible_no"
	TKeyMenuFile        = "menu_file"
	TKeyMenuRefresh     = "menu_refresh"
	TKeyMenuSettings    = "menu_settings"
	TKeyMenuExportVCard = "menu_export_vcard"
	TKeyMenuExportICal  = "menu_export_ical"
	TKeyMenuExportPDF   = "menu_export_pdf"
	TKeyMenuChart       = "menu_chart"
	TKeyMenuHelp        = "menu_help"
	TKeyMenuSource      = "menu_source"
	TKeyMenuReportBug   = "menu_report_bug"
	TKeyMenuRegister    = "menu_register"
	TKeyLblLanguage     = "lbl_language"
	TKeyHelpLanguage    = "help_language"
	TKeyLblSheetURL     = "lbl_sheet_url"
	TKeyHelpSheetURL    = "help_sheet_url"
	TKeyLblToken        = "lbl_access_token"
	TKeyHelpToken       = "help_access_token"
	TKeyLblEligibility  = "lbl_eligibility_days"
	TKeyHelpEligibility = "help_eligibility_days"
	TKeyLblDays         = "lbl_days_suffix"
	TKeyLblSource       = "lbl_source"
	TKeyLblGeneral      = "lbl_general"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyLblFooter       = "lbl_footer"
	TKeyErrDaysReq      = "err_days_required"
	TKeyErrDaysNum      = "err_days_number"
	TKeyErrDaysRange    = "err_days_range"
	TKeyErrExportEmpty  = "err_export_empty"
	TKeyMsgExportDone   = "msg_export_done"
	TKeyEvtSummary      = "event_summary" // Requires Name, Group
	TKeyLblOrganisation = "lbl_organisation"
	TKeyLblBecomeADonor = "lbl_become_a_donor"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 32 * 1024 * 1024 // 32MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
)

// -----------------------------------------------------------------------------
// HTTP Headers
// -----------------------------------------------------------------------------

const (
	HeaderUserAgent     = "User-Agent"
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// -----------------------------------------------------------------------------
// Export Standards
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Donor//Eligibility//EN"
	ICalCalName = "Donor eligibility"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "godonor"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDescr      = "DESCRIPTION"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary    = "Eligible to donate: %s (%s)"
	FallbackName       = "Unknown donor"
	FormatNoteLocation = "Location: %s"

	PDFTitle       = "Blood donors"
	PDFFont        = "Helvetica"
	PDFFontSize    = 10
	PDFTitleSize   = 14
	PDFRowHeight   = 7
	PDFGeneratedAt = "Generated %s"
	PDFDateFormat  = "2006-01-02 15:04"
	PDFEligibleYes = "Yes"
	PDFEligibleOn  = "From %s"
	PDFUnknown     = "-"

	ChartTitle  = "Donors per blood group"
	ChartWidth  = 640
	ChartHeight = 400

	DateFormatDisplay = "2006-01-02"
)

// PDFColumnWidths matches the PDF header order: group, name, location, mobile, eligibility.
var PDFColumnWidths = []float64{18, 48, 48, 34, 42}

// PDFHeaders is the header row of the PDF donor sheet.
var PDFHeaders = []string{"Group", "Name", "Location", "Mobile", "Eligible"}

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrSheetURLEmpty     = "configuration error: sheet URL is empty"
	ErrFetcherMissing    = "internal error: network fetcher is not initialized"
	ErrInvalidURL        = "invalid URL structure"
	ErrProtocol          = "unsupported protocol scheme (http/https only)"
	ErrReadBody          = "failed to read response body"
	ErrUnwrap            = "failed to unwrap gviz response"
	ErrPayloadTooShort   = "gviz response is shorter than its wrapper"
	ErrMalformedPayload  = "gviz payload is not valid JSON"
	ErrMissingRows       = "gviz payload has no table.rows array"
	ErrDecodeTable       = "failed to decode gviz table"
	ErrDecodeDonors      = "failed to decode donor rows"
	ErrUnknownBloodGroup = "unknown blood group"
	ErrEnvConfig         = "failed to read environment overrides"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrExportVCard       = "failed to encode vCard"
	ErrExportICal        = "failed to encode iCalendar data"
	ErrExportPDF         = "failed to render PDF"
	ErrExportChart       = "failed to render chart"
	ErrExportWrite       = "failed to write export file"
	ErrExportEmpty       = "no donors to export"
	ErrOpenURL           = "failed to open link"
	ErrKeyringSave       = "failed to save access token to keyring"
	ErrKeyringDelete     = "failed to delete access token from keyring"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackEligibleYes = "YES (based on last donation)"
	FallbackEligibleNo  = "NO (based on last donation)"
	FallbackMatches     = "%d donor(s) found"

	PlaceholderURL = "https://docs.google.com/spreadsheets/d/.../gviz/tq?tqx=out:json"

	MsgLoadRequested = "Donor load requested"
	MsgLoadStarted   = "Loading donor sheet"
	MsgLoadFinished  = "Donor sheet loaded"
	MsgLoadFailed    = "Donor sheet load failed"
	MsgFetchStart    = "Initiating sheet download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchOK       = "Sheet downloading"
	MsgCriteria      = "Search criteria changed"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgTokenFail     = "Access token retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgExportDone    = "Export written"
	MsgSettingsSave  = "Saving preferences"
	MsgSettingsOpen  = "Opening settings window"
	MsgSettingsFocus = "Settings window already open, requesting focus"
	MsgEnvOverride   = "Environment override applied"
	MsgSkipNoDate    = "Skipping donor without donation date"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyRows      = "rows"
	LogKeyDonors    = "donors"
	LogKeyMatches   = "matches"
	LogKeySearched  = "searched"
	LogKeyGroup     = "blood_group"
	LogKeyLocation  = "location"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyFormat    = "format"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyManual    = "manual"
	LogKeyDuration  = "duration_ms"
	LogKeySize      = "content_length"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompFetcher = "fetcher"
	CompLoader  = "loader"
	CompExport  = "export"
	CompMain    = "main"
	CompI18n    = "i18n"
)
