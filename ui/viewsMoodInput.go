package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	generateButtonText = "Generate Palette"
	generatingText     = "Generating..."
)

// MoodInputView is the card holding the mood entry and the Generate button.
// Pressing Enter in the entry behaves like pressing the button.
type MoodInputView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	entry  *widget.Entry
	button *widget.Button

	state *MoodifyAppState
}

// NewMoodInputView creates the mood input card and subscribes it to busy changes
func NewMoodInputView(state *MoodifyAppState) *MoodInputView {
	view := &MoodInputView{state: state}

	view.entry = widget.NewEntry()
	view.entry.SetPlaceHolder("Describe your mood...")
	view.entry.OnSubmitted = func(string) {
		view.submit()
	}

	view.button = widget.NewButtonWithIcon(generateButtonText, theme.ColorPaletteIcon(), func() {
		view.submit()
	})
	view.button.Importance = widget.HighImportance

	state.RegisterBusyChangedCallback(view.onBusyChanged)

	view.Card = NewCard(container.NewVBox(view.entry, view.button))
	return view
}

func (v *MoodInputView) submit() {
	v.state.RequestPalette(v.entry.Text)
}

func (v *MoodInputView) onBusyChanged(busy bool) {
	if busy {
		v.button.SetText(generatingText)
		v.button.Disable()
		return
	}
	v.button.SetText(generateButtonText)
	v.button.Enable()
}
