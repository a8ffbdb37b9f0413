package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"moodify/config"
)

func ShowAboutDialog(moodifyApp fyne.App) {
	title := NewBoldLabel("Moodify")

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Turns a short mood description into a color palette using a language model.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Features:\n" +
			"• Background color, five palette colors and a theme name\n" +
			"• Click a swatch to copy its hex code\n" +
			"• Click the background line to copy the background\n" +
			"• Export the palette as a PNG image\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(version),
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	content := container.NewBorder(nil, bottom, nil, nil, container.NewScroll(mainContent))

	aboutWin = moodifyApp.NewWindow("About Moodify")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
