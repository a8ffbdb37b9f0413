package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"moodify/models"
	"moodify/palette"
)

// PaletteGenerator produces a palette for a mood description
type PaletteGenerator interface {
	Generate(ctx context.Context, mood string) (models.Palette, error)
}

// ViewState is everything the output area shows. It is a plain value:
// the palette view renders it and compares it with the previous one.
type ViewState struct {
	// Palette is the last generated palette, zero when none
	Palette models.Palette
	// Err holds the failure text of the last request, empty on success
	Err string
}

// HasPalette reports whether the state carries a palette to display
func (v ViewState) HasPalette() bool {
	return v.Err == "" && !v.Palette.IsZero()
}

// MoodifyAppState holds the shared state for the entire application.
// Views register callbacks and are notified when the state changes, so the
// input card, the output card and the menus stay decoupled.
type MoodifyAppState struct {
	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Generator turns moods into palettes
	Generator PaletteGenerator

	// Clipboard receives copied hex codes
	Clipboard Clipboard

	// CopyFeedback is how long "Copied!" stays visible
	CopyFeedback time.Duration

	// Timeout bounds a single palette request
	Timeout time.Duration

	// Current is the state last rendered by the output area
	Current ViewState

	// Busy is true while a request is in flight
	Busy bool

	// OnViewChanged is called after Current has been replaced
	OnViewChanged []func(ViewState)

	// OnBusyChanged is called when a request starts or finishes
	OnBusyChanged []func(bool)

	// runAsync starts the blocking request off the UI goroutine and
	// runOnUI hops back; tests replace both with direct calls
	runAsync func(func())
	runOnUI  func(func())
}

// NewMoodifyAppState creates and initializes a new application state.
// This should be called once at application startup.
func NewMoodifyAppState(window fyne.Window, generator PaletteGenerator, cb Clipboard) *MoodifyAppState {
	return &MoodifyAppState{
		Window:        window,
		Generator:     generator,
		Clipboard:     cb,
		CopyFeedback:  DefaultCopyFeedback,
		Timeout:       60 * time.Second,
		OnViewChanged: make([]func(ViewState), 0),
		OnBusyChanged: make([]func(bool), 0),
		runAsync:      func(fn func()) { go fn() },
		runOnUI:       fyne.Do,
	}
}

// RequestPalette asks the generator for a palette for mood. Blank input and
// requests made while another is in flight are ignored. It reports whether
// a request was started.
func (s *MoodifyAppState) RequestPalette(mood string) bool {
	mood = strings.TrimSpace(mood)
	if mood == "" || s.Busy {
		return false
	}

	log.Info().Str("component", "ui").Str("mood", mood).Msg("generate palette pressed")
	s.setBusy(true)

	s.runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()

		result, err := s.Generator.Generate(ctx, mood)

		s.runOnUI(func() {
			s.setBusy(false)

			switch {
			case errors.Is(err, palette.ErrEmptyMood):
				return
			case err != nil:
				s.SetView(ViewState{Err: err.Error()})
			default:
				s.SetView(ViewState{Palette: result})
			}
		})
	})

	return true
}

// SetView replaces the current view state and notifies all registered callbacks
func (s *MoodifyAppState) SetView(view ViewState) {
	s.Current = view
	for _, callback := range s.OnViewChanged {
		callback(view)
	}
}

func (s *MoodifyAppState) setBusy(busy bool) {
	s.Busy = busy
	for _, callback := range s.OnBusyChanged {
		callback(busy)
	}
}

// RegisterViewChangedCallback registers a callback to be called when the view state changes
func (s *MoodifyAppState) RegisterViewChangedCallback(callback func(ViewState)) {
	s.OnViewChanged = append(s.OnViewChanged, callback)
}

// RegisterBusyChangedCallback registers a callback to be called when a request starts or ends
func (s *MoodifyAppState) RegisterBusyChangedCallback(callback func(bool)) {
	s.OnBusyChanged = append(s.OnBusyChanged, callback)
}
