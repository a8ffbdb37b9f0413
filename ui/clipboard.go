package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"
)

// Clipboard receives copied hex codes. Only writes are needed.
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard writes through golang.design/x/clipboard. When the native
// clipboard cannot be initialized (no display, cgo disabled) it falls back to
// the clipboard exposed by the Fyne driver.
type systemClipboard struct {
	once     sync.Once
	initErr  error
	fallback fyne.Clipboard
}

// NewSystemClipboard returns the clipboard used by the running application.
// fallback may be nil.
func NewSystemClipboard(fallback fyne.Clipboard) Clipboard {
	return &systemClipboard{fallback: fallback}
}

func (c *systemClipboard) Copy(text string) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
		if c.initErr != nil {
			log.Warn().Str("component", "ui").Err(c.initErr).Msg("native clipboard unavailable, using driver clipboard")
		}
	})

	if c.initErr != nil {
		if c.fallback == nil {
			return fmt.Errorf("clipboard unavailable: %w", c.initErr)
		}
		c.fallback.SetContent(text)
		return nil
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
