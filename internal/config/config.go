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

// UserAgent identifies the application in the share server's Server header.
var UserAgent = "Go-YourAge/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Your Age"
	AppID             = "com.github.tartampluch.go-yourage"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
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

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1

	// ActionBufferSize bounds the number of queued state actions.
	ActionBufferSize = 16
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdRoot  = "go-yourage"
	CmdServe = "serve"
	CmdShow  = "show"

	FlagDebug    = "debug"
	FlagPort     = "port"
	FlagQuery    = "query"
	FlagName     = "name"
	FlagBirthday = "birthday"

	FlagDescDebug    = "Enable debug logging"
	FlagDescPort     = "Port of the local share server"
	FlagDescQuery    = "Query string to decode (e.g. ?name=Ada&birthday=1815-12-10)"
	FlagDescName     = "Name to greet"
	FlagDescBirthday = "Birthday as YYYY-MM-DD"

	DescRoot  = "Live age counter with shareable links"
	DescServe = "Run the local share server without a window"
	DescShow  = "Print the age breakdown once and exit"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 420
	MainWindowHeight    = 460
	SettingsWindowWidth = 400

	// Preference Keys
	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefQuery      = "query"
	PrefLastRun    = "last_run_version"

	DatePlaceholder = "YYYY-MM-DD"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeyMenuFile      = "menu_file"
	TKeyMenuSettings  = "menu_settings"
	TKeyLblPrompt     = "lbl_prompt"
	TKeyLblName       = "lbl_name"
	TKeyLblBirthday   = "lbl_birthday"
	TKeyLblHello      = "lbl_hello" // Requires Name
	TKeyLblYouAre     = "lbl_you_are"
	TKeyLblInvalid    = "lbl_invalid_birthday"
	TKeyLblShare      = "lbl_share"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblPort       = "lbl_server_port"
	TKeyHelpPort      = "help_port"
	TKeyLblGeneral    = "lbl_general"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblFooter     = "lbl_footer"
	TKeyNotifRestart  = "notif_restart"
	TKeyErrPortReq    = "err_port_required"
	TKeyErrPortNum    = "err_port_number"
	TKeyErrPortRange  = "err_port_range"
	TKeyTitleStartErr = "title_startup_error"

	// Age rows carry one/other plural forms and take {{.Value}}.
	TKeyAgeYear   = "age_year"
	TKeyAgeMonth  = "age_month"
	TKeyAgeDay    = "age_day"
	TKeyAgeHour   = "age_hour"
	TKeyAgeMinute = "age_minute"
	TKeyAgeSecond = "age_second"
)

// AgeLineKeys maps each unit noun to its translation key.
var AgeLineKeys = map[string]string{
	UnitYear:   TKeyAgeYear,
	UnitMonth:  TKeyAgeMonth,
	UnitDay:    TKeyAgeDay,
	UnitHour:   TKeyAgeHour,
	UnitMinute: TKeyAgeMinute,
	UnitSecond: TKeyAgeSecond,
}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"

	// TickPeriod is the refresh period of the live counter.
	TickPeriod = 1 * time.Second

	// Fixed-length approximations used by the age breakdown.
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
	DaysPerYear      = 365
	DaysPerMonth     = 30

	// Digit grouping.
	GroupSeparator = ','
	GroupSize      = 3
	NegativeSign   = "-"

	// Plural suffix appended to unit nouns when the count is not exactly one.
	PluralSuffix = "s"
)

// Unit nouns (singular form) in display order.
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

// -----------------------------------------------------------------------------
// Query String & Input Fields
// -----------------------------------------------------------------------------

const (
	QueryPrefix      = "?"
	QueryKeyName     = "name"
	QueryKeyBirthday = "birthday"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go YourAge//Share//EN"
	ICalCalName = "Birthday"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goyourage"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s"
	FormatUID       = "%s@%s"

	FormatSummary = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the only accepted birthday layout (ISO-8601 calendar date).
	DateFormatISO = "2006-01-02"

	// Limits
	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	AllowedMethodsPage = "GET, HEAD, POST"
	AllowedMethods     = "GET, HEAD"
	MaxFormBytes       = 64 * 1024
	SchemeHTTP         = "http"
	RouteRoot          = "/"
	RouteVCard         = "/card.vcf"
	RouteICal          = "/birthday.ics"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderCacheControl       = "Cache-Control"
	HeaderETag               = "ETag"
	HeaderAllow              = "Allow"
	HeaderXContentType       = "X-Content-Type-Options"
	HeaderIfNoneMatch        = "If-None-Match"
	HeaderLocation           = "Location"
	HeaderServer             = "Server"

	MimeTextHTML        = "text/html; charset=utf-8"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeTextVCard       = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
	// FormatAttachment expects a file name.
	FormatAttachment = `attachment; filename="%s"`

	FileNameVCard = "card.vcf"
	FileNameICal  = "birthday.ics"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrDateParse      = "unable to parse date"
	ErrMissingInput   = "input event carries no value"
	ErrQueryRead      = "failed to read query string"
	ErrQueryWrite     = "failed to persist query string"
	ErrIncomplete     = "name and valid birthday are required"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrRender         = "failed to render page"
	ErrParseForm      = "failed to parse form"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrStoreStopped   = "state store stopped"
	ErrShareURL       = "invalid share URL"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgBadRequest   = "Bad Request"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackPrompt  = "Type your name and birthday"
	FallbackHello   = "Hello %s!"
	FallbackYouAre  = "You are:"
	FallbackInvalid = "Enter a valid birthday"
	FallbackShare   = "Share this page"

	// Web form labels.
	FormLabelName     = "Name"
	FormLabelBirthday = "Birthday"
	FormLabelSubmit   = "OK"
	FormLabelVCard    = "vCard"
	FormLabelICal     = "iCalendar"

	// FormatAgeLine renders "<value> <unit> old".
	FormatAgeLine = "%s %s old"

	MsgPortBusy       = "Port %s is busy or unavailable."
	MsgWorkerStart    = "Ticker started"
	MsgWorkerStop     = "Ticker stopped"
	MsgStoreStart     = "State store started"
	MsgStoreStop      = "State store stopping due to context cancellation"
	MsgActionApplied  = "Action applied"
	MsgQueryPersisted = "Query string persisted"
	MsgQueryLoaded    = "Initial query string decoded"
	MsgBadDate        = "Birthday text is not a valid date"
	MsgBadQuery       = "Query string partially malformed"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgShareServed    = "Share export served"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgSettingsSaved  = "Settings saved"
	MsgDispatchFailed = "Action dropped"
	MsgUIReady        = "Main window ready"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyFile      = "file"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeyAction    = "action"
	LogKeyQuery     = "query"
	LogKeyValue     = "value"
	LogKeyRoute     = "route"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
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
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompStore  = "store"
	CompServer = "server"
	CompWorker = "ticker"
	CompMain   = "main"
	CompI18n   = "i18n"
	CompCLI    = "cli"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
