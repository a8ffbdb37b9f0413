package parser

import (
	"fmt"
	"strings"

	"moodify/models"
)

// Line prefixes the model is asked to answer with
const (
	PrefixBackground = "background:"
	PrefixPalette    = "palette:"
	PrefixTheme      = "theme:"
)

// ParseError describes why a model reply did not match the three-line format
type ParseError struct {
	Reason string
	Line   string // offending line, empty when a line is missing entirely
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return "invalid response: " + e.Reason
	}
	return fmt.Sprintf("invalid response: %s (line %q)", e.Reason, e.Line)
}

// ParseResponse extracts a palette from a reply shaped like
//
//	background: #1A2B3C
//	palette: #112233, #223344, #334455, #445566, #556677
//	theme: Ocean Calm
//
// The three lines may appear in any order and surrounding chatter is
// ignored; for each prefix the first matching line wins. The palette line
// must hold exactly models.PaletteSize colors.
func ParseResponse(text string) (models.Palette, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	bgLine, bgValue, err := findLine(lines, PrefixBackground)
	if err != nil {
		return models.Palette{}, err
	}
	paletteLine, paletteValue, err := findLine(lines, PrefixPalette)
	if err != nil {
		return models.Palette{}, err
	}
	themeLine, themeValue, err := findLine(lines, PrefixTheme)
	if err != nil {
		return models.Palette{}, err
	}

	var result models.Palette

	result.Background, err = NormalizeHex(bgValue)
	if err != nil {
		return models.Palette{}, &ParseError{Reason: "bad background color: " + err.Error(), Line: bgLine}
	}

	tokens := strings.Split(paletteValue, ",")
	if len(tokens) != models.PaletteSize {
		return models.Palette{}, &ParseError{
			Reason: fmt.Sprintf("expected %d palette colors, got %d", models.PaletteSize, len(tokens)),
			Line:   paletteLine,
		}
	}
	for i, token := range tokens {
		hex, err := NormalizeHex(token)
		if err != nil {
			return models.Palette{}, &ParseError{
				Reason: fmt.Sprintf("bad palette color %d: %v", i+1, err),
				Line:   paletteLine,
			}
		}
		result.Colors[i] = hex
	}

	if themeValue == "" {
		return models.Palette{}, &ParseError{Reason: "empty theme name", Line: themeLine}
	}
	result.Theme = themeValue

	return result, nil
}

// findLine returns the first line starting with prefix and the trimmed text
// after its first colon
func findLine(lines []string, prefix string) (string, string, error) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		return line, strings.TrimSpace(value), nil
	}
	return "", "", &ParseError{Reason: fmt.Sprintf("missing %q line", prefix)}
}
