package ui

import (
	"image/color"
	"time"
)

// Theme constants define the visual appearance of the application.
// The backdrop starts as a gradient and is recolored to each palette's
// background once one has been generated.

// Color palette for the application chrome
var (
	// GradientStartColor is the lighter purple used at the start of the background gradient
	GradientStartColor = color.RGBA{R: 115, G: 103, B: 240, A: 255}

	// GradientEndColor is the darker purple used at the end of the background gradient
	GradientEndColor = color.RGBA{R: 136, G: 84, B: 208, A: 255}

	// CardBackgroundColor is a translucent dark card so any backdrop color stays visible
	CardBackgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 96}

	// TextColorLight is used for text drawn straight onto the backdrop
	TextColorLight = color.White

	// SwatchOutlineColor frames every swatch
	SwatchOutlineColor = color.White
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the main application title
	TitleTextSize = 40

	// SubtitleTextSize is used for descriptive text below titles
	SubtitleTextSize = 16

	// FooterTextSize is used for footer text
	FooterTextSize = 12

	// SwatchTextSize is used for the hex code inside a swatch
	SwatchTextSize = 18

	// InfoTextSize is used for the background and theme labels
	InfoTextSize = 16
)

// Layout constants
const (
	// GradientAngle defines the angle of the background gradient in degrees
	GradientAngle = 45

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 60

	// SwatchHeight is the fixed height of one swatch row
	SwatchHeight = 80

	// SwatchOutlineWidth is the stroke width of the white swatch frame
	SwatchOutlineWidth = 2

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 520

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 760
)

// Copy feedback text and timing
const (
	// CopiedText replaces a swatch's hex code right after it is copied
	CopiedText = "Copied!"

	// CopiedBackgroundText replaces the background label right after it is copied
	CopiedBackgroundText = "Copied background!"

	// DefaultCopyFeedback is how long the confirmation text stays visible
	DefaultCopyFeedback = time.Second
)
