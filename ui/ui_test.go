package ui

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodify/models"
	"moodify/palette"
)

var oceanPalette = models.Palette{
	Background: "#1A2B3C",
	Colors:     [models.PaletteSize]string{"#112233", "#223344", "#334455", "#445566", "#556677"},
	Theme:      "Ocean Calm",
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakeGenerator struct {
	result models.Palette
	err    error
	moods  []string
}

func (f *fakeGenerator) Generate(_ context.Context, mood string) (models.Palette, error) {
	f.moods = append(f.moods, mood)
	return f.result, f.err
}

// fakeScheduler collects revert callbacks so tests decide when timers fire
type fakeScheduler struct {
	delays  []time.Duration
	pending []func()
}

func (f *fakeScheduler) schedule(d time.Duration, fn func()) {
	f.delays = append(f.delays, d)
	f.pending = append(f.pending, fn)
}

func (f *fakeScheduler) fireAll() {
	pending := f.pending
	f.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func newTestState(gen PaletteGenerator, cb Clipboard) *MoodifyAppState {
	state := NewMoodifyAppState(nil, gen, cb)
	state.runAsync = func(fn func()) { fn() }
	state.runOnUI = func(fn func()) { fn() }
	return state
}

func newTestViews(t *testing.T, gen PaletteGenerator, cb Clipboard) (*MoodifyAppState, *mainViews, *fakeScheduler) {
	t.Helper()
	test.NewTempApp(t)

	state := newTestState(gen, cb)
	views := newMainViews(state, "test-model")

	sched := &fakeScheduler{}
	views.palette.feedback.schedule = sched.schedule

	w := test.NewTempWindow(t, views.content)
	state.Window = w

	return state, views, sched
}

func TestSwatchCopyAndRevert(t *testing.T) {
	test.NewTempApp(t)

	cb := &fakeClipboard{}
	sched := &fakeScheduler{}
	feedback := newCopyFeedback(cb, 1500*time.Millisecond)
	feedback.schedule = sched.schedule

	swatch := NewSwatch("#112233", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, feedback)
	assert.Equal(t, "#112233", swatch.Text())
	assert.Equal(t, Idle, swatch.State())

	test.Tap(swatch)
	assert.Equal(t, []string{"#112233"}, cb.copied)
	assert.Equal(t, CopiedText, swatch.Text())
	assert.Equal(t, JustCopied, swatch.State())
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, sched.delays)

	sched.fireAll()
	assert.Equal(t, "#112233", swatch.Text())
	assert.Equal(t, Idle, swatch.State())

	// Copying works again after the revert
	test.Tap(swatch)
	assert.Equal(t, []string{"#112233", "#112233"}, cb.copied)
	assert.Equal(t, CopiedText, swatch.Text())
}

func TestSwatchDoubleTapRevertsOnce(t *testing.T) {
	test.NewTempApp(t)

	cb := &fakeClipboard{}
	sched := &fakeScheduler{}
	feedback := newCopyFeedback(cb, 0)
	feedback.schedule = sched.schedule

	swatch := NewSwatch("#ABC", color.White, feedback)
	test.Tap(swatch)
	test.Tap(swatch)
	require.Len(t, sched.pending, 2)
	assert.Equal(t, DefaultCopyFeedback, sched.delays[0])

	sched.pending[0]()
	assert.Equal(t, "#ABC", swatch.Text())
	sched.pending[1]()
	assert.Equal(t, "#ABC", swatch.Text())
}

func TestSwatchClipboardFailureKeepsLabel(t *testing.T) {
	test.NewTempApp(t)

	cb := &fakeClipboard{err: errors.New("no clipboard")}
	sched := &fakeScheduler{}
	feedback := newCopyFeedback(cb, time.Second)
	feedback.schedule = sched.schedule

	swatch := NewSwatch("#112233", color.Black, feedback)
	test.Tap(swatch)

	assert.Equal(t, "#112233", swatch.Text())
	assert.Equal(t, Idle, swatch.State())
	assert.Empty(t, sched.pending)
}

func TestBackgroundLabelCopyAndRevert(t *testing.T) {
	test.NewTempApp(t)

	cb := &fakeClipboard{}
	sched := &fakeScheduler{}
	feedback := newCopyFeedback(cb, time.Second)
	feedback.schedule = sched.schedule

	label := NewBackgroundLabel("#1A2B3C", feedback)
	assert.Equal(t, "Background color used: #1A2B3C", label.Text())

	test.Tap(label)
	assert.Equal(t, []string{"#1A2B3C"}, cb.copied)
	assert.Equal(t, CopiedBackgroundText, label.Text())
	assert.Equal(t, JustCopied, label.State())

	sched.fireAll()
	assert.Equal(t, "Background color used: #1A2B3C", label.Text())
	assert.Equal(t, Idle, label.State())
}

func TestGenerateShowsPalette(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	cb := &fakeClipboard{}
	state, views, _ := newTestViews(t, gen, cb)

	views.input.entry.SetText("calm ocean")
	test.Tap(views.input.button)

	assert.Equal(t, []string{"calm ocean"}, gen.moods)
	assert.Equal(t, oceanPalette, state.Current.Palette)

	swatches := views.palette.Swatches()
	require.Len(t, swatches, models.PaletteSize)
	for i, s := range swatches {
		assert.Equal(t, oceanPalette.Colors[i], s.Text())
	}
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}, swatches[0].FillColor())

	require.NotNil(t, views.palette.BackgroundLabel())
	assert.Equal(t, "Background color used: #1A2B3C", views.palette.BackgroundLabel().Text())
	assert.Equal(t, "Theme name: Ocean Calm", views.palette.ThemeText())
	assert.Equal(t, color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 0xFF}, views.palette.Backdrop.FillColor)
	assert.Empty(t, views.palette.ErrorText())
}

func TestEnterSubmitsMood(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	_, views, _ := newTestViews(t, gen, &fakeClipboard{})

	views.input.entry.SetText("sunset")
	views.input.entry.OnSubmitted(views.input.entry.Text)

	assert.Equal(t, []string{"sunset"}, gen.moods)
	assert.Len(t, views.palette.Swatches(), models.PaletteSize)
}

func TestEmptyMoodMakesNoRequest(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	state, views, _ := newTestViews(t, gen, &fakeClipboard{})

	for _, mood := range []string{"", "   ", "\t\n"} {
		views.input.entry.SetText(mood)
		test.Tap(views.input.button)
		assert.False(t, state.RequestPalette(mood))
	}

	assert.Empty(t, gen.moods)
	assert.Empty(t, views.palette.Swatches())
	assert.False(t, state.Current.HasPalette())
}

func TestBusyDisablesButton(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	state, views, _ := newTestViews(t, gen, &fakeClipboard{})

	var queued func()
	state.runAsync = func(fn func()) { queued = fn }

	views.input.entry.SetText("rainy day")
	test.Tap(views.input.button)

	require.NotNil(t, queued)
	assert.True(t, state.Busy)
	assert.True(t, views.input.button.Disabled())
	assert.Equal(t, generatingText, views.input.button.Text)

	// A second request while busy is ignored
	assert.False(t, state.RequestPalette("another mood"))

	queued()
	assert.False(t, state.Busy)
	assert.False(t, views.input.button.Disabled())
	assert.Equal(t, generateButtonText, views.input.button.Text)
	assert.Equal(t, []string{"rainy day"}, gen.moods)
}

func TestGenerateErrorReplacesPalette(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	state, views, _ := newTestViews(t, gen, &fakeClipboard{})

	require.True(t, state.RequestPalette("calm ocean"))
	require.Len(t, views.palette.Swatches(), models.PaletteSize)

	gen.err = errors.New("palette request failed: Error: 401, unauthorized")
	require.True(t, state.RequestPalette("calm ocean"))

	assert.Equal(t, "Error: palette request failed: Error: 401, unauthorized", views.palette.ErrorText())
	assert.Empty(t, views.palette.Swatches())
	assert.Nil(t, views.palette.BackgroundLabel())
	assert.Empty(t, views.palette.ThemeText())
	assert.Equal(t, color.Transparent, views.palette.Backdrop.FillColor)
	assert.False(t, state.Current.HasPalette())
}

func TestEmptyMoodErrorLeavesView(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	state, views, _ := newTestViews(t, gen, &fakeClipboard{})

	require.True(t, state.RequestPalette("calm ocean"))

	gen.err = palette.ErrEmptyMood
	require.True(t, state.RequestPalette("x"))

	assert.False(t, state.Busy)
	assert.Equal(t, oceanPalette, state.Current.Palette)
	assert.Len(t, views.palette.Swatches(), models.PaletteSize)
}

func TestRenderSkipsUnchangedState(t *testing.T) {
	_, views, _ := newTestViews(t, &fakeGenerator{}, &fakeClipboard{})
	view := views.palette

	assert.False(t, view.Render(ViewState{}))
	assert.True(t, view.Render(ViewState{Palette: oceanPalette}))

	first := view.Swatches()[0]
	assert.False(t, view.Render(ViewState{Palette: oceanPalette}))
	assert.Same(t, first, view.Swatches()[0])

	assert.True(t, view.Render(ViewState{}))
	assert.Empty(t, view.Swatches())
	assert.Empty(t, view.ThemeText())
}

func TestRenderRejectsBadHex(t *testing.T) {
	_, views, _ := newTestViews(t, &fakeGenerator{}, &fakeClipboard{})

	bad := oceanPalette
	bad.Colors[2] = "#GGGGGG"
	assert.True(t, views.palette.Render(ViewState{Palette: bad}))

	assert.Contains(t, views.palette.ErrorText(), "Error: ")
	assert.Empty(t, views.palette.Swatches())
}

func TestSwatchCopyThroughView(t *testing.T) {
	gen := &fakeGenerator{result: oceanPalette}
	cb := &fakeClipboard{}
	state, views, sched := newTestViews(t, gen, cb)

	require.True(t, state.RequestPalette("calm ocean"))

	third := views.palette.Swatches()[2]
	test.Tap(third)
	assert.Equal(t, []string{"#334455"}, cb.copied)
	assert.Equal(t, CopiedText, third.Text())
	assert.Equal(t, "#112233", views.palette.Swatches()[0].Text())

	test.Tap(views.palette.BackgroundLabel())
	assert.Equal(t, []string{"#334455", "#1A2B3C"}, cb.copied)

	sched.fireAll()
	assert.Equal(t, "#334455", third.Text())
	assert.Equal(t, "Background color used: #1A2B3C", views.palette.BackgroundLabel().Text())
}

func TestViewChangedCallbacks(t *testing.T) {
	state := newTestState(&fakeGenerator{result: oceanPalette}, &fakeClipboard{})

	var seen []bool
	state.RegisterViewChangedCallback(func(v ViewState) {
		seen = append(seen, v.HasPalette())
	})

	state.SetView(ViewState{Palette: oceanPalette})
	state.SetView(ViewState{Palette: oceanPalette, Err: "boom"})
	state.SetView(ViewState{})

	assert.Equal(t, []bool{true, false, false}, seen)
}
