package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"
	"github.com/rs/zerolog/log"
)

const (
	initialLinesToShow = 1000 // Show last 1000 lines initially
	linesPerScroll     = 500  // Load 500 more lines when scrolling up
)

// ShowLogWindow opens a window over moodify.log. It shows the tail of the
// file, can load older lines, searches the loaded lines and, with Follow
// ticked, appends new lines as they are written.
func ShowLogWindow(moodifyApp fyne.App, logFilePath string) {
	logWindow := moodifyApp.NewWindow("Moodify Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var allLines []string       // All lines read from file
	var displayedLines []string // Currently displayed lines
	var currentStartIndex int   // Index in allLines where displayedLines starts
	var follower *tail.Tail

	scroll := container.NewScroll(logLabel)

	updateDisplay := func() {
		logLabel.SetText(strings.Join(displayedLines, "\n"))
	}

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			updateDisplay()
			return
		}

		filtered := filterLines(displayedLines, query)
		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s\n(Searching only in loaded lines)", query))
			return
		}
		logLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered)))
	}
	searchEntry.OnSubmitted = func(string) { performSearch() }

	searchButton := widget.NewButton("Search", performSearch)

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(filepath.Dir(logFilePath), logWindow)
	})

	loadMoreButton := widget.NewButton("Load More Lines", func() {
		newStartIndex := olderStart(currentStartIndex, linesPerScroll)
		if newStartIndex == currentStartIndex {
			dialog.ShowInformation("Info", "All available lines are already loaded", logWindow)
			return
		}

		additionalLines := allLines[newStartIndex:currentStartIndex]
		displayedLines = append(append([]string{}, additionalLines...), displayedLines...)
		currentStartIndex = newStartIndex
		updateDisplay()
	})

	stopFollowing := func() {
		if follower == nil {
			return
		}
		follower.Stop()
		follower.Cleanup()
		follower = nil
	}

	followCheck := widget.NewCheck("Follow", func(on bool) {
		if !on {
			stopFollowing()
			return
		}

		t, err := tail.TailFile(logFilePath, tail.Config{
			Follow:    true,
			ReOpen:    true,
			MustExist: false,
			Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
			Logger:    tail.DiscardingLogger,
		})
		if err != nil {
			dialog.ShowError(fmt.Errorf("cannot follow log file: %w", err), logWindow)
			return
		}
		follower = t

		go func() {
			for line := range t.Lines {
				if line.Err != nil {
					log.Warn().Str("component", "ui").Err(line.Err).Msg("log follow error")
					continue
				}
				text := line.Text
				fyne.Do(func() {
					allLines = append(allLines, text)
					displayedLines = append(displayedLines, text)
					if searchEntry.Text == "" {
						updateDisplay()
						scroll.ScrollToBottom()
					}
				})
			}
		}()
	})

	infoLabel := widget.NewLabel("")

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, loadMoreButton, followCheck, openDirButton),
		searchEntry)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)
	logWindow.SetOnClosed(stopFollowing)
	logWindow.Show()

	// Load file asynchronously
	go func() {
		lines, err := readLines(logFilePath)
		if err != nil {
			fyne.Do(func() {
				logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
			})
			return
		}

		fyne.Do(func() {
			allLines = lines
			currentStartIndex = olderStart(len(lines), initialLinesToShow)
			displayedLines = append([]string{}, lines[currentStartIndex:]...)

			infoLabel.SetText(fmt.Sprintf("Showing last %d of %d total lines. Use 'Load More Lines' to see older entries. Search works on loaded lines only.",
				len(displayedLines), len(lines)))
			updateDisplay()
			scroll.ScrollToBottom()
		})
	}()
}

// readLines reads a whole file line by line
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return lines, nil
}

// olderStart moves a start index back by up to n lines, never below zero
func olderStart(current, n int) int {
	start := current - n
	if start < 0 {
		return 0
	}
	return start
}

// filterLines returns the lines containing query, case-insensitively
func filterLines(lines []string, query string) []string {
	var filtered []string
	queryLower := strings.ToLower(query)
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
