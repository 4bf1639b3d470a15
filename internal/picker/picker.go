// Package picker opens file and directory choosers for the QR form, either as
// fyne dialogs inside the window or as native OS dialogs.
package picker

import (
	"errors"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	nativedialog "github.com/sqweek/dialog"

	"github.com/Akaiko1/amazing-qr/internal/form"
)

const (
	pictureTitle   = "Select picture"
	directoryTitle = "Select output directory"
	filterLabel    = "Images"
)

// Picker asks the user for a path. onChosen receives "" when the user cancels.
type Picker interface {
	ChoosePicture(onChosen func(path string))
	ChooseDirectory(onChosen func(path string))
}

// New returns the native picker when native is set, otherwise the fyne one.
func New(native bool, window fyne.Window, onError func(error)) Picker {
	if onError == nil {
		onError = func(error) {}
	}
	if native {
		return &NativePicker{onError: onError}
	}
	return &FynePicker{window: window, onError: onError}
}

// FynePicker uses fyne's built-in file dialogs, parented to the main window.
type FynePicker struct {
	window  fyne.Window
	onError func(error)
}

// ChoosePicture opens a file dialog filtered to image files.
func (p *FynePicker) ChoosePicture(onChosen func(path string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			p.onError(err)
			return
		}
		if reader == nil {
			onChosen("") // User cancelled
			return
		}
		defer reader.Close()
		onChosen(reader.URI().Path())
	}, p.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(form.ImageExtensions))
	startInWorkingDir(fileDialog)
	fileDialog.Show()
}

// ChooseDirectory opens a folder dialog.
func (p *FynePicker) ChooseDirectory(onChosen func(path string)) {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			p.onError(err)
			return
		}
		if folder == nil {
			onChosen("") // User cancelled
			return
		}
		onChosen(folder.Path())
	}, p.window)

	startInWorkingDir(folderDialog)
	folderDialog.Show()
}

func startInWorkingDir(d *dialog.FileDialog) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(wd)); err == nil {
		d.SetLocation(lister)
	}
}

// NativePicker uses the operating system's dialogs. Calls block until the dialog closes.
type NativePicker struct {
	onError func(error)
}

// ChoosePicture opens the native open-file dialog filtered to image files.
func (p *NativePicker) ChoosePicture(onChosen func(path string)) {
	path, err := nativedialog.File().
		Title(pictureTitle).
		Filter(filterLabel, nativeExtensions()...).
		Load()
	p.deliver(path, err, onChosen)
}

// ChooseDirectory opens the native directory dialog.
func (p *NativePicker) ChooseDirectory(onChosen func(path string)) {
	path, err := nativedialog.Directory().
		Title(directoryTitle).
		Browse()
	p.deliver(path, err, onChosen)
}

func (p *NativePicker) deliver(path string, err error, onChosen func(string)) {
	if errors.Is(err, nativedialog.ErrCancelled) {
		onChosen("")
		return
	}
	if err != nil {
		p.onError(err)
		return
	}
	onChosen(path)
}

// nativeExtensions strips the leading dots the native filter does not want.
func nativeExtensions() []string {
	exts := make([]string, 0, len(form.ImageExtensions))
	for _, ext := range form.ImageExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	return exts
}
