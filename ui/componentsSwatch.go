package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

// CopyState is the state of a copyable label
type CopyState int

const (
	// Idle shows the normal text
	Idle CopyState = iota
	// JustCopied shows the confirmation text until the revert timer fires
	JustCopied
)

// scheduleFunc runs fn on the UI goroutine once d has elapsed
type scheduleFunc func(d time.Duration, fn func())

// scheduleOnUI is the production scheduler: a timer that hops back onto
// the Fyne event loop before touching widgets
func scheduleOnUI(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fyne.Do(fn)
	})
}

// copyFeedback copies a value and shows a transient confirmation.
// A second tap before the revert fires schedules another revert; both
// restore the same text so the order does not matter.
type copyFeedback struct {
	clipboard Clipboard
	delay     time.Duration
	schedule  scheduleFunc
}

func newCopyFeedback(cb Clipboard, delay time.Duration) *copyFeedback {
	if delay <= 0 {
		delay = DefaultCopyFeedback
	}
	return &copyFeedback{clipboard: cb, delay: delay, schedule: scheduleOnUI}
}

// copy writes value to the clipboard, calls confirm and later calls restore.
// Nothing changes on screen when the clipboard write fails.
func (f *copyFeedback) copy(value string, confirm, restore func()) {
	if err := f.clipboard.Copy(value); err != nil {
		log.Error().Str("component", "ui").Err(err).Str("value", value).Msg("copy to clipboard failed")
		return
	}
	log.Debug().Str("component", "ui").Str("value", value).Msg("copied to clipboard")

	confirm()
	f.schedule(f.delay, restore)
}

// Swatch renders one palette color as an outlined rectangle with its hex
// code centered on top. Tapping it copies the hex code.
type Swatch struct {
	widget.BaseWidget

	// Hex is the color code shown and copied
	Hex string

	state    CopyState
	rect     *canvas.Rectangle
	label    *canvas.Text
	feedback *copyFeedback
}

// NewSwatch creates a swatch filled with fill and labelled with hex
func NewSwatch(hex string, fill color.Color, feedback *copyFeedback) *Swatch {
	rect := canvas.NewRectangle(fill)
	rect.StrokeColor = SwatchOutlineColor
	rect.StrokeWidth = SwatchOutlineWidth
	rect.SetMinSize(fyne.NewSize(CardMinWidth, SwatchHeight))

	label := canvas.NewText(hex, TextColorLight)
	label.TextSize = SwatchTextSize
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	label.Alignment = fyne.TextAlignCenter

	s := &Swatch{
		Hex:      hex,
		rect:     rect,
		label:    label,
		feedback: feedback,
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.rect, container.NewCenter(s.label)))
}

// Tapped copies the hex code and shows "Copied!" for the feedback delay
func (s *Swatch) Tapped(*fyne.PointEvent) {
	s.feedback.copy(s.Hex,
		func() { s.setState(JustCopied) },
		func() { s.setState(Idle) },
	)
}

// Cursor shows a pointer so the swatch reads as clickable
func (s *Swatch) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Text returns the label currently displayed
func (s *Swatch) Text() string {
	return s.label.Text
}

// State returns the copy state
func (s *Swatch) State() CopyState {
	return s.state
}

// FillColor returns the color the swatch is painted with
func (s *Swatch) FillColor() color.Color {
	return s.rect.FillColor
}

func (s *Swatch) setState(state CopyState) {
	s.state = state
	if state == JustCopied {
		s.label.Text = CopiedText
	} else {
		s.label.Text = s.Hex
	}
	s.label.Refresh()
}

// CopyLabel is the tappable "Background color used: #XXXXXX" line
type CopyLabel struct {
	widget.BaseWidget

	// Hex is the color code copied on tap
	Hex string

	state    CopyState
	text     string
	label    *canvas.Text
	feedback *copyFeedback
}

// NewBackgroundLabel creates the background color line for hex
func NewBackgroundLabel(hex string, feedback *copyFeedback) *CopyLabel {
	text := BackgroundLabelText(hex)

	label := canvas.NewText(text, TextColorLight)
	label.TextSize = InfoTextSize
	label.Alignment = fyne.TextAlignCenter

	l := &CopyLabel{
		Hex:      hex,
		text:     text,
		label:    label,
		feedback: feedback,
	}
	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer implements fyne.Widget
func (l *CopyLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.label)
}

// Tapped copies the background hex and shows "Copied background!"
func (l *CopyLabel) Tapped(*fyne.PointEvent) {
	l.feedback.copy(l.Hex,
		func() { l.setState(JustCopied) },
		func() { l.setState(Idle) },
	)
}

// Cursor shows a pointer so the label reads as clickable
func (l *CopyLabel) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Text returns the label currently displayed
func (l *CopyLabel) Text() string {
	return l.label.Text
}

// State returns the copy state
func (l *CopyLabel) State() CopyState {
	return l.state
}

func (l *CopyLabel) setState(state CopyState) {
	l.state = state
	if state == JustCopied {
		l.label.Text = CopiedBackgroundText
	} else {
		l.label.Text = l.text
	}
	l.label.Refresh()
}
