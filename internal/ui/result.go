package ui

import (
	"fmt"
	"image"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"

	"github.com/Akaiko1/amazing-qr/internal/clipboard"
	"github.com/Akaiko1/amazing-qr/internal/qrgen"
)

const (
	resultTitle    = "QR Code - %s"
	msgPathCopied  = "Path copied to clipboard!"
	msgTextCopied  = "QR code copied to clipboard as text!"
	resultMinWidth = 240
)

// displayQRCode decodes the image at path and opens it in a new window. The
// window's canvas image owns the decoded pixels for as long as it is open.
func (a *QRCodeApp) displayQRCode(path string) (fyne.Window, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load QR code image %q: %w", path, err)
	}

	var result *qrgen.Result
	if a.lastResult != nil && a.lastResult.Path == path {
		result = a.lastResult
	}

	w := a.app.NewWindow(fmt.Sprintf(resultTitle, filepath.Base(path)))
	w.SetContent(a.createResultContent(w, img, path, result))
	w.Show()

	a.resultWindow = w
	return w, nil
}

func (a *QRCodeApp) createResultContent(w fyne.Window, img image.Image, path string, result *qrgen.Result) fyne.CanvasObject {
	picture := canvas.NewImageFromImage(img)
	picture.FillMode = canvas.ImageFillOriginal
	picture.ScaleMode = canvas.ImageScalePixels

	copyPathBtn := widget.NewButtonWithIcon("Copy Path", theme.ContentCopyIcon(), func() {
		if err := a.clipboard.SetContent(path); err != nil {
			showErrorIn(w, "Clipboard Error", err)
			return
		}
		dialog.ShowInformation("Success", msgPathCopied, w)
	})

	copyTextBtn := widget.NewButtonWithIcon("Copy as Text", theme.DocumentIcon(), func() {
		if err := clipboard.CopyText(a.clipboard, a.renderer, result); err != nil {
			showErrorIn(w, "Clipboard Error", err)
			return
		}
		dialog.ShowInformation("Success", msgTextCopied, w)
	})
	if result == nil {
		copyTextBtn.Disable()
	}

	buttons := container.NewGridWithColumns(2, copyPathBtn, copyTextBtn)
	pathLabel := widget.NewLabel(path)
	pathLabel.Wrapping = fyne.TextWrapBreak

	footer := container.NewVBox(pathLabel, buttons)
	content := container.NewBorder(nil, footer, nil, nil, container.NewCenter(picture))

	bounds := img.Bounds()
	w.Resize(fyne.NewSize(float32(max(bounds.Dx(), resultMinWidth)), float32(bounds.Dy())+footer.MinSize().Height))
	return content
}
