package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling.
// This is a convenience function to avoid repeating the style configuration.
//
// Parameters:
//   - text: The text to display in the label
//
// Returns:
//   - *widget.Label: A label widget with bold styling
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading, // Left-aligned text
		fyne.TextStyle{Bold: true},
	)
}
