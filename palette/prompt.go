package palette

import "fmt"

const promptTemplate = `Given the mood "%s", generate:
- 1 hex color code for the background
- 5 hex color codes for a color palette representing this mood
- A short creative 2-3 word name for this theme

Respond exactly in this format:
background: #HEX_BG
palette: #HEX1, #HEX2, #HEX3, #HEX4, #HEX5
theme: THEME_NAME`

// BuildPrompt asks the model for a reply in the three-line format ParseResponse reads
func BuildPrompt(mood string) string {
	return fmt.Sprintf(promptTemplate, mood)
}
