package clipboard

import (
	"errors"

	"fyne.io/fyne/v2"

	"github.com/Akaiko1/amazing-qr/internal/qrgen"
	"github.com/Akaiko1/amazing-qr/internal/renderer"
)

var (
	ErrUnavailable   = errors.New("clipboard is not available")
	ErrNothingToCopy = errors.New("no QR code generated yet")
)

// Writer puts text on the system clipboard.
type Writer interface {
	SetContent(content string) error
}

// FyneWriter implements Writer on top of a fyne clipboard.
type FyneWriter struct {
	clipboard fyne.Clipboard
}

// NewFyneWriter wraps the clipboard of a running fyne app.
func NewFyneWriter(clipboard fyne.Clipboard) *FyneWriter {
	return &FyneWriter{clipboard: clipboard}
}

// SetContent replaces the clipboard text.
func (w *FyneWriter) SetContent(content string) error {
	if w.clipboard == nil {
		return ErrUnavailable
	}
	w.clipboard.SetContent(content)
	return nil
}

// CopyText copies a text rendering of a generated symbol.
func CopyText(w Writer, r renderer.SymbolRenderer, result *qrgen.Result) error {
	text := r.Render(result)
	if text == "" {
		return ErrNothingToCopy
	}
	return w.SetContent(text)
}
