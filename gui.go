package main

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog/log"

	"moodify/config"
	"moodify/palette"
	"moodify/ui"
)

const appID = "io.github.moodify"

// runGUI builds the main window and blocks in the Fyne event loop
func runGUI(cfg *config.Config) {
	moodifyApp := app.NewWithID(appID)

	app.SetMetadata(fyne.AppMetadata{
		ID:      appID,
		Name:    "Moodify",
		Version: config.Version,
	})

	myWindow := moodifyApp.NewWindow("Moodify")
	myWindow.SetIcon(theme.ColorPaletteIcon())

	if err := cfg.Validate(); errors.Is(err, config.ErrMissingAPIKey) {
		log.Warn().Str("component", "ui").Msg("no API key configured, requests will fail until one is set")
	}

	state := ui.NewMoodifyAppState(
		myWindow,
		palette.NewGeneratorFromConfig(cfg),
		ui.NewSystemClipboard(moodifyApp.Clipboard()),
	)
	state.CopyFeedback = cfg.CopyFeedback()
	state.Timeout = cfg.Timeout()

	logPath, err := config.LogFilePath()
	if err != nil {
		log.Error().Str("component", "ui").Err(err).Msg("cannot resolve log file path")
	}

	showLogs := func() {
		log.Info().Str("component", "ui").Msg("log window opened")
		ui.ShowLogWindow(moodifyApp, logPath)
	}
	showConfig := func() {
		log.Info().Str("component", "ui").Msg("configuration window opened")
		ui.ShowConfigWindow(moodifyApp, cfg)
	}
	exportPalette := func() {
		log.Info().Str("component", "ui").Msg("export palette triggered")
		ui.ShowExportPaletteDialog(state)
	}

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", showLogs),
		fyne.NewMenuItem("Configuration", showConfig),
	)

	exportItem := fyne.NewMenuItem("Export PNG...", exportPalette)
	exportItem.Disabled = true
	paletteMenu := fyne.NewMenu("Palette", exportItem)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Info().Str("component", "ui").Msg("about dialog opened")
			ui.ShowAboutDialog(moodifyApp)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, paletteMenu, helpMenu)
	myWindow.SetMainMenu(mainMenu)

	state.RegisterViewChangedCallback(func(view ui.ViewState) {
		exportItem.Disabled = !view.HasPalette()
		mainMenu.Refresh()
	})

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Info().Str("component", "ui").Msg("user closed application (ctrl + q)")
		moodifyApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		showLogs()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyE,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		exportPalette()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyC,
		Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift,
	}, func(shortcut fyne.Shortcut) {
		showConfig()
	})

	myWindow.SetCloseIntercept(func() {
		log.Info().Str("component", "ui").Msg("user closed application")
		moodifyApp.Quit()
	})

	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))
	myWindow.SetContent(ui.BuildMainLayout(state, cfg.Model))

	myWindow.ShowAndRun()
}
