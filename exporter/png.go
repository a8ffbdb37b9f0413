package exporter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"moodify/models"
	"moodify/parser"
)

// Image geometry for exported palettes
const (
	ImageWidth  = 600
	ImageHeight = 360

	margin       = 20
	footerHeight = 40
)

// Render draws p: the background fills the canvas, the five colors are equal
// vertical stripes with their hex code, and the theme name runs along the bottom.
func Render(p models.Palette) (*image.NRGBA, error) {
	bg, err := parser.HexToNRGBA(p.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	img := imaging.New(ImageWidth, ImageHeight, bg)

	stripeWidth := (ImageWidth - 2*margin) / models.PaletteSize
	stripeHeight := ImageHeight - 2*margin - footerHeight

	for i, hex := range p.Colors {
		fill, err := parser.HexToNRGBA(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}

		stripe := imaging.New(stripeWidth, stripeHeight, fill)
		drawLabel(stripe, hex, 8, stripeHeight-10, textColorFor(hex))

		img = imaging.Paste(img, stripe, image.Pt(margin+i*stripeWidth, margin))
	}

	drawLabel(img, p.Theme, margin, ImageHeight-margin, textColorFor(p.Background))

	return img, nil
}

// ExportPNG renders p and writes it to path. The format follows the file extension.
func ExportPNG(p models.Palette, path string) error {
	img, err := Render(p)
	if err != nil {
		return fmt.Errorf("cannot render palette: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("cannot save palette image: %w", err)
	}

	log.Info().Str("component", "exporter").Str("path", path).Str("theme", p.Theme).Msg("palette exported")
	return nil
}

func drawLabel(dst draw.Image, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func textColorFor(hex string) color.Color {
	c, err := parser.HexToColor(hex)
	if err == nil && parser.IsLight(c) {
		return color.Black
	}
	return color.White
}
