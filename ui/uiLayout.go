package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// mainViews keeps the views built by BuildMainLayout reachable for tests
type mainViews struct {
	input   *MoodInputView
	palette *PaletteView
	content fyne.CanvasObject
}

// BuildMainLayout constructs the complete application UI layout.
//
// The layout structure is:
//   - Background: purple gradient, covered by the palette backdrop once a
//     palette has been generated
//   - Header: application title and subtitle (top)
//   - Content: mood input card, scrollable swatch card, background and theme lines
//   - Footer: usage hint and model name (bottom)
//
// Parameters:
//   - state: The shared application state
//   - model: Model name shown in the footer
//
// Returns:
//   - fyne.CanvasObject: The complete UI layout ready to be set as window content
func BuildMainLayout(state *MoodifyAppState, model string) fyne.CanvasObject {
	return newMainViews(state, model).content
}

func newMainViews(state *MoodifyAppState, model string) *mainViews {
	gradient := canvas.NewLinearGradient(
		GradientStartColor,
		GradientEndColor,
		GradientAngle,
	)

	inputView := NewMoodInputView(state)
	paletteView := NewPaletteView(state)

	// Input on top, labels at the bottom, swatches fill the rest
	contentArea := container.NewBorder(
		container.NewPadded(inputView.Card),
		container.NewPadded(paletteView.Labels),
		nil,
		nil,
		container.NewPadded(paletteView.Card),
	)

	mainLayout := container.NewBorder(
		container.NewPadded(NewHeader()),
		container.NewPadded(NewFooter(model)),
		nil,
		nil,
		contentArea,
	)

	// Gradient at the back, palette backdrop over it, widgets in front
	content := container.NewStack(gradient, paletteView.Backdrop, mainLayout)

	return &mainViews{
		input:   inputView,
		palette: paletteView,
		content: content,
	}
}
