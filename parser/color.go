package parser

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeHex trims s, adds a missing leading '#' and checks that the rest
// is three or six hex digits. The letter case is preserved so labels show
// exactly what the model sent.
func NormalizeHex(s string) (string, error) {
	hex := strings.TrimSpace(s)
	if hex == "" {
		return "", fmt.Errorf("empty color value")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	digits := hex[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return "", fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
	for _, c := range digits {
		if !isHexDigit(c) {
			return "", fmt.Errorf("invalid hex color %q: %q is not a hex digit", s, c)
		}
	}
	return hex, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// HexToColor parses a hex string into a colorful.Color
func HexToColor(hex string) (colorful.Color, error) {
	normalized, err := NormalizeHex(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(strings.ToLower(normalized))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// HexToRGBA converts "#RRGGBB" into red, green, blue and alpha channels in
// the 0..1 range. Alpha is always 1.
func HexToRGBA(hex string) (r, g, b, a float64, err error) {
	c, err := HexToColor(hex)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return c.R, c.G, c.B, 1.0, nil
}

// HexToNRGBA converts a hex string into an opaque color usable by canvas objects
func HexToNRGBA(hex string) (color.NRGBA, error) {
	c, err := HexToColor(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// IsLight reports whether dark text reads better than light text on c
func IsLight(c colorful.Color) bool {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r+0.7152*g+0.0722*b > 0.179
}
