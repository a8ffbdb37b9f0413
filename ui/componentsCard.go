package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container with a translucent
// background, so the backdrop color shows through around the content.
//
// Parameters:
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with background and padded content
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.CornerRadius = 6
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	return container.NewStack(bg, container.NewPadded(content))
}
