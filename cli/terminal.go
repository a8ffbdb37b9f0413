package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"moodify/models"
	"moodify/parser"
)

// Respects NO_COLOR and FORCE_COLOR environment variables
var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor || forceColor
}

// swatch renders a block of the given hex color followed by its code
func swatch(hex string, rich bool) string {
	if !rich {
		return fmt.Sprintf("[%s]", hex)
	}
	c, err := parser.HexToColor(hex)
	if err != nil {
		return fmt.Sprintf("[%s]", hex)
	}
	r, g, b := c.Clamped().RGB255()

	block := color.BgRGB(int(r), int(g), int(b))
	block.EnableColor()
	return block.Sprint("      ") + " " + hex
}

// PrintPalette writes a palette the way the GUI shows it: one swatch per
// color, then the background and theme lines
func PrintPalette(w io.Writer, p models.Palette, rich bool) {
	bold := color.New(color.Bold)
	if rich {
		bold.EnableColor()
	} else {
		bold.DisableColor()
	}

	fmt.Fprintln(w, bold.Sprint("Palette"))
	for _, hex := range p.Colors {
		fmt.Fprintf(w, "  %s\n", swatch(hex, rich))
	}
	fmt.Fprintf(w, "Background color used: %s\n", swatch(p.Background, rich))
	fmt.Fprintf(w, "Theme name: %s\n", bold.Sprint(p.Theme))
}
