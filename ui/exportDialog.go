package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"moodify/exporter"
)

// ShowExportPaletteDialog saves the current palette as a PNG image
func ShowExportPaletteDialog(state *MoodifyAppState) {
	window := state.Window

	if !state.Current.HasPalette() {
		dialog.ShowInformation("Export Palette", "Generate a palette first.", window)
		return
	}
	current := state.Current.Palette

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(fmt.Errorf("error opening save dialog: %v", err), window)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := exporter.ExportPNG(current, path); err != nil {
			dialog.ShowError(err, window)
			return
		}
		dialog.ShowInformation("Success", "Palette exported to "+filepath.Base(path), window)
	}, window)

	saveDialog.SetFileName(ExportFileName(current.Theme))
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))

	if homePath, err := os.UserHomeDir(); err == nil {
		if homeDir, err := storage.ListerForURI(storage.NewFileURI(homePath)); err == nil {
			saveDialog.SetLocation(homeDir)
		}
	}

	saveDialog.Resize(fyne.NewSize(900, 700))
	saveDialog.Show()
}

// ExportFileName derives a file name such as "ocean-calm.png" from a theme name
func ExportFileName(theme string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(theme) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "palette"
	}
	return name + ".png"
}
