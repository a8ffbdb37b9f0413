package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// NewFooter creates the footer hint line. model is the configured model name
// and may be empty.
func NewFooter(model string) fyne.CanvasObject {
	text := "Click a swatch to copy its hex code"
	if model != "" {
		text += " · " + model
	}

	footerText := canvas.NewText(text, TextColorLight)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	return footerText
}
