package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/engine"
	"github.com/tartampluch/go-yourage/internal/server"
)

// YourAgeApp encapsulates the UI state, preferences, and background services.
type YourAgeApp struct {
	App            fyne.App
	Window         fyne.Window
	SettingsWindow fyne.Window
	Preferences    fyne.Preferences
	I18nBundle     *i18n.Bundle
	Localizer      *i18n.Localizer
	Ctx            context.Context

	Server *server.ShareServer
	Clock  engine.Clock // Injected clock for testability
	Store  *engine.Store

	SupportedLanguages []string

	ticker *engine.Ticker

	// Main window widgets
	promptLabel   *widget.Label
	form          *widget.Form
	nameEntry     *widget.Entry
	birthdayEntry *FilteredEntry
	invalidLabel  *widget.Label
	helloLabel    *widget.Label
	youAreLabel   *widget.Label
	lineLabels    []*widget.Label
	shareLink     *widget.Hyperlink
	resultBox     *fyne.Container
}

// NewYourAgeApp constructs the application and wires dependencies.
func NewYourAgeApp(a fyne.App, ctx context.Context, srv *server.ShareServer, clock engine.Clock) *YourAgeApp {
	a.SetIcon(theme.HistoryIcon())

	return &YourAgeApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Clock:              clock,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Setup loads translations, restores the last query from preferences and
// builds the main window. It starts no goroutine.
func (app *YourAgeApp) Setup(location engine.Location) {
	app.SetupI18n()
	app.Store = engine.NewStore(app.Clock, location)
	app.buildMainWindow()

	app.Store.Subscribe(func(s engine.State) {
		fyne.Do(func() { app.render(s) })
	})
}

// Run launches the application services and the main UI loop.
func (app *YourAgeApp) Run() {
	app.Setup(NewPreferencesLocation(app.Preferences))

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				app.GetMsg(config.TKeyTitleStartErr),
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	stop := app.startServices(config.TickPeriod)
	defer stop()

	app.Window.Show()
	slog.Info(config.MsgUIReady, config.LogKeyComponent, config.CompUI)
	app.App.Run()
}

// startServices runs the store loop and a ticker feeding it Tick actions.
// The returned func stops the ticker first, then the store, and waits for
// both, so no render happens once it returns.
func (app *YourAgeApp) startServices(period time.Duration) func() {
	ctx, cancel := context.WithCancel(app.Ctx)
	done := make(chan struct{})

	go func() {
		app.Store.Run(ctx)
		close(done)
	}()

	app.ticker = engine.StartTicker(period, app.Clock, func(now time.Time) {
		app.dispatch(engine.Tick{At: now})
	})

	return func() {
		app.ticker.Stop()
		cancel()
		<-done
	}
}

// dispatch forwards an action to the store. Drops only happen during shutdown.
func (app *YourAgeApp) dispatch(a engine.Action) {
	if err := app.Store.Dispatch(app.Ctx, a); err != nil {
		slog.Debug(config.MsgDispatchFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
}

// buildMainWindow lays out the inputs and the result area, and primes the
// inputs from the restored state before hooking their change callbacks.
func (app *YourAgeApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	initial := app.Store.Snapshot()

	app.nameEntry = widget.NewEntry()
	app.nameEntry.SetText(initial.Name)
	app.nameEntry.OnChanged = func(text string) {
		app.dispatch(engine.UpdateName{Text: text})
	}

	app.birthdayEntry = NewDateEntry()
	app.birthdayEntry.PlaceHolder = config.DatePlaceholder
	app.birthdayEntry.SetText(initial.Birthday.String())
	app.birthdayEntry.OnChanged = func(text string) {
		app.dispatch(engine.UpdateBirthday{Text: text})
	}

	app.form = widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), app.nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblBirthday), app.birthdayEntry),
	)

	app.promptLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	app.invalidLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	app.helloLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	app.youAreLabel = widget.NewLabel("")

	lines := container.NewVBox()
	app.lineLabels = nil
	for range (engine.Breakdown{}).Lines() {
		l := widget.NewLabel("")
		app.lineLabels = append(app.lineLabels, l)
		lines.Add(l)
	}

	app.shareLink = widget.NewHyperlink("", nil)
	app.resultBox = container.NewVBox(app.helloLabel, app.youAreLabel, lines, app.shareLink)

	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu(app.GetMsg(config.TKeyMenuFile),
		fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow),
	)))

	w.SetContent(container.NewPadded(container.NewVBox(
		app.promptLabel,
		app.form,
		widget.NewSeparator(),
		app.invalidLabel,
		app.resultBox,
	)))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))

	app.refreshTexts()
	app.render(initial)
}

// refreshTexts applies the active language to the static labels.
func (app *YourAgeApp) refreshTexts() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.promptLabel.SetText(app.GetMsg(config.TKeyLblPrompt))
	app.invalidLabel.SetText(app.GetMsg(config.TKeyLblInvalid))
	app.youAreLabel.SetText(app.GetMsg(config.TKeyLblYouAre))
	app.shareLink.SetText(app.GetMsg(config.TKeyLblShare))

	app.form.Items[0].Text = app.GetMsg(config.TKeyLblName)
	app.form.Items[1].Text = app.GetMsg(config.TKeyLblBirthday)
	app.form.Refresh()
}

// render shows one snapshot. An empty name hides everything below the
// inputs; a missing birthday shows only the prompt.
func (app *YourAgeApp) render(s engine.State) {
	v := engine.NewView(s)

	if !v.Visible {
		app.invalidLabel.Hide()
		app.resultBox.Hide()
		return
	}
	if !v.HasAge {
		app.invalidLabel.Show()
		app.resultBox.Hide()
		return
	}

	app.invalidLabel.Hide()
	app.helloLabel.SetText(app.helloText(v.Name))
	for i, line := range v.Lines {
		app.lineLabels[i].SetText(app.ageLineText(line))
	}

	if err := app.shareLink.SetURLFromString(app.Server.ShareURL(v.Query)); err != nil {
		slog.Warn(config.ErrShareURL,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
	app.resultBox.Show()
}
