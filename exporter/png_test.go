package exporter

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodify/models"
)

var ocean = models.Palette{
	Background: "#1A2B3C",
	Colors:     [5]string{"#112233", "#223344", "#334455", "#445566", "#556677"},
	Theme:      "Ocean Calm",
}

func TestRenderLayout(t *testing.T) {
	img, err := Render(ocean)
	require.NoError(t, err)

	assert.Equal(t, ImageWidth, img.Bounds().Dx())
	assert.Equal(t, ImageHeight, img.Bounds().Dy())

	// top-left corner is background
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, img.NRGBAAt(2, 2))

	// top of each stripe carries its color
	stripeWidth := (ImageWidth - 2*margin) / models.PaletteSize
	expected := []color.NRGBA{
		{R: 0x11, G: 0x22, B: 0x33, A: 0xff},
		{R: 0x22, G: 0x33, B: 0x44, A: 0xff},
		{R: 0x33, G: 0x44, B: 0x55, A: 0xff},
		{R: 0x44, G: 0x55, B: 0x66, A: 0xff},
		{R: 0x55, G: 0x66, B: 0x77, A: 0xff},
	}
	for i, want := range expected {
		x := margin + i*stripeWidth + stripeWidth/2
		assert.Equal(t, want, img.NRGBAAt(x, margin+2), "stripe %d", i)
	}
}

func TestRenderRejectsBadColors(t *testing.T) {
	bad := ocean
	bad.Colors[3] = "#nope"
	_, err := Render(bad)
	assert.ErrorContains(t, err, "color 4")

	bad = ocean
	bad.Background = ""
	_, err = Render(bad)
	assert.ErrorContains(t, err, "background")
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.png")
	require.NoError(t, ExportPNG(ocean, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, ImageWidth, img.Bounds().Dx())
}
