package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"moodify/models"
)

var ocean = models.Palette{
	Background: "#1A2B3C",
	Colors:     [5]string{"#112233", "#223344", "#334455", "#445566", "#556677"},
	Theme:      "Ocean Calm",
}

func TestPrintPalettePlain(t *testing.T) {
	var buf bytes.Buffer
	PrintPalette(&buf, ocean, false)

	want := "Palette\n" +
		"  [#112233]\n" +
		"  [#223344]\n" +
		"  [#334455]\n" +
		"  [#445566]\n" +
		"  [#556677]\n" +
		"Background color used: [#1A2B3C]\n" +
		"Theme name: Ocean Calm\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintPaletteRich(t *testing.T) {
	var buf bytes.Buffer
	PrintPalette(&buf, ocean, true)

	out := buf.String()
	// 24-bit background escape for #112233
	assert.Contains(t, out, "48;2;17;34;51")
	assert.Contains(t, out, "#556677")
	assert.Contains(t, out, "Ocean Calm")
}
