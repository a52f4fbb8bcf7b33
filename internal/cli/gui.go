package cli

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2/app"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/tartampluch/go-yourage/internal/server"
	"github.com/tartampluch/go-yourage/internal/ui"
)

// runGUI initializes the Fyne application, wires dependencies, and blocks
// until the main window closes.
func runGUI(ctx context.Context, opts *RootOptions) error {
	a := app.NewWithID(config.AppID)

	// Record the version for potential migration logic in future updates.
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	port := a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
	srv := server.NewShareServer(port, opts.Clock)

	gui := ui.NewYourAgeApp(a, ctx, srv, opts.Clock)

	// Watch for context cancellation to quit the UI gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompCLI)
		a.Quit()
	}()

	gui.Run()
	return nil
}
