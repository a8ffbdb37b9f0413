package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"moodify/parser"
)

// BackgroundLabelText is the text of the background line for hex
func BackgroundLabelText(hex string) string {
	return "Background color used: " + hex
}

// ThemeLabelText is the text of the theme line for name
func ThemeLabelText(name string) string {
	return "Theme name: " + name
}

// ErrorLabelText is the text shown in place of the swatches after a failure
func ErrorLabelText(msg string) string {
	return "Error: " + msg
}

// PaletteView is the output area: the backdrop behind the whole window,
// a scrollable column of swatches and the background and theme lines.
// It only changes through Render.
type PaletteView struct {
	// Card holds the scrollable swatch column
	Card fyne.CanvasObject

	// Labels holds the background and theme lines
	Labels fyne.CanvasObject

	// Backdrop sits behind the whole window and takes the palette background
	Backdrop *canvas.Rectangle

	output     *fyne.Container
	background *fyne.Container
	themeLabel *canvas.Text

	swatches   []*Swatch
	bgLabel    *CopyLabel
	errorLabel *widget.Label

	feedback *copyFeedback
	current  ViewState
}

// NewPaletteView creates an empty output area and subscribes it to view changes
func NewPaletteView(state *MoodifyAppState) *PaletteView {
	view := &PaletteView{
		Backdrop: canvas.NewRectangle(color.Transparent),
		output:   container.NewVBox(),
		feedback: newCopyFeedback(state.Clipboard, state.CopyFeedback),
	}

	view.background = container.NewStack()

	view.themeLabel = canvas.NewText("", TextColorLight)
	view.themeLabel.TextSize = InfoTextSize
	view.themeLabel.TextStyle = fyne.TextStyle{Bold: true}
	view.themeLabel.Alignment = fyne.TextAlignCenter

	view.Card = NewCard(container.NewVScroll(view.output))
	view.Labels = container.NewVBox(view.background, view.themeLabel)

	state.RegisterViewChangedCallback(func(v ViewState) {
		view.Render(v)
	})

	return view
}

// Render rebuilds the output area for state. It does nothing when state
// equals the last rendered state and reports whether anything changed.
func (v *PaletteView) Render(state ViewState) bool {
	if state == v.current {
		return false
	}
	v.current = state

	v.output.RemoveAll()
	v.background.RemoveAll()
	v.swatches = nil
	v.bgLabel = nil
	v.errorLabel = nil

	if state.Err != "" {
		v.renderError(state.Err)
		return true
	}
	if state.Palette.IsZero() {
		v.themeLabel.Text = ""
		v.themeLabel.Refresh()
		v.setBackdrop(color.Transparent)
		return true
	}

	p := state.Palette

	bg, err := parser.HexToNRGBA(p.Background)
	if err != nil {
		// ParseResponse validates colors, so this only happens for hand-built states
		v.renderError(err.Error())
		return true
	}
	v.setBackdrop(bg)

	for _, hex := range p.Colors {
		fill, err := parser.HexToNRGBA(hex)
		if err != nil {
			v.renderError(err.Error())
			return true
		}
		swatch := NewSwatch(hex, fill, v.feedback)
		v.swatches = append(v.swatches, swatch)
		v.output.Add(swatch)
	}

	v.bgLabel = NewBackgroundLabel(p.Background, v.feedback)
	v.background.Add(v.bgLabel)

	v.themeLabel.Text = ThemeLabelText(p.Theme)
	v.themeLabel.Refresh()

	log.Debug().Str("component", "ui").Str("theme", p.Theme).Msg("palette rendered")
	return true
}

func (v *PaletteView) renderError(msg string) {
	v.output.RemoveAll()
	v.background.RemoveAll()
	v.swatches = nil
	v.bgLabel = nil

	v.errorLabel = widget.NewLabel(ErrorLabelText(msg))
	v.errorLabel.Wrapping = fyne.TextWrapWord
	v.errorLabel.Importance = widget.DangerImportance
	v.output.Add(v.errorLabel)

	v.themeLabel.Text = ""
	v.themeLabel.Refresh()
	v.setBackdrop(color.Transparent)

	log.Debug().Str("component", "ui").Str("error", msg).Msg("error rendered")
}

func (v *PaletteView) setBackdrop(c color.Color) {
	v.Backdrop.FillColor = c
	v.Backdrop.Refresh()
}

// Swatches returns the swatches currently shown, in palette order
func (v *PaletteView) Swatches() []*Swatch {
	return v.swatches
}

// BackgroundLabel returns the background line, nil when no palette is shown
func (v *PaletteView) BackgroundLabel() *CopyLabel {
	return v.bgLabel
}

// ThemeText returns the theme line as displayed
func (v *PaletteView) ThemeText() string {
	return v.themeLabel.Text
}

// ErrorText returns the error label text, empty when no error is shown
func (v *PaletteView) ErrorText() string {
	if v.errorLabel == nil {
		return ""
	}
	return v.errorLabel.Text
}
