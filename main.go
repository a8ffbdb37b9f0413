package main

// Package structure:
// - models/    : Palette value type
// - config/    : Configuration (config.toml, environment, logging, version)
// - parser/    : Model reply parsing and hex color conversion
// - llm/       : Chat-completion HTTP client
// - palette/   : Mood -> prompt -> reply -> palette
// - exporter/  : PNG export of a palette
// - cli/       : Terminal rendering for the generate command
// - ui/        : Fyne views, widgets, state and secondary windows

import (
	"context"
	"os"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
