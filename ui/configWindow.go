package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"moodify/config"
)

// ShowConfigWindow displays the effective configuration with the API key
// masked. The text can be searched line by line.
func ShowConfigWindow(moodifyApp fyne.App, cfg *config.Config) {
	configWindow := moodifyApp.NewWindow("Moodify Configuration")
	configWindow.Resize(fyne.NewSize(600, 400))

	configLabel := widget.NewLabel("")
	configLabel.Wrapping = fyne.TextWrapWord
	configLabel.TextStyle = fyne.TextStyle{Monospace: true}

	description, err := cfg.Describe()
	if err != nil {
		description = fmt.Sprintf("Failed to render configuration: %v", err)
	}
	allLines := strings.Split(strings.TrimRight(description, "\n"), "\n")
	configLabel.SetText(strings.Join(allLines, "\n"))

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search configuration...")

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			configLabel.SetText(strings.Join(allLines, "\n"))
			return
		}

		filtered := filterLines(allLines, query)
		if len(filtered) == 0 {
			configLabel.SetText(fmt.Sprintf("No results found for: %s", query))
			return
		}
		configLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches]", len(filtered)))
	}

	clearSearch := func() {
		searchEntry.SetText("")
		configLabel.SetText(strings.Join(allLines, "\n"))
	}

	// Trigger search on Enter key
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)
	clearButton := widget.NewButton("Clear", clearSearch)

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton),
		searchEntry)

	content := container.NewBorder(searchBox, nil, nil, nil, container.NewScroll(configLabel))
	configWindow.SetContent(content)
	configWindow.Show()
}
