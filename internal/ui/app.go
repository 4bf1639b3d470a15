package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/Akaiko1/amazing-qr/internal/clipboard"
	"github.com/Akaiko1/amazing-qr/internal/config"
	"github.com/Akaiko1/amazing-qr/internal/form"
	"github.com/Akaiko1/amazing-qr/internal/logger"
	"github.com/Akaiko1/amazing-qr/internal/picker"
	"github.com/Akaiko1/amazing-qr/internal/qrgen"
	"github.com/Akaiko1/amazing-qr/internal/renderer"
)

const (
	// UI Constants
	appTitle = "Amazing QR"

	// Section headers
	headerText   = "⌨ Text to encode"
	headerImage  = "📷 Image Quality"
	headerOutput = "🗃 Output settings"

	// Messages
	msgReady      = "Ready"
	msgGenerating = "Generating QR code..."
	msgFailed     = "Generation failed"
	msgSaved      = "Saved version %d-%s QR code to %s"
)

var errBadDrop = errors.New("please drop an image file or a folder")

// QRCodeApp is the main window: a form of QR parameters and a generate button.
type QRCodeApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config
	log    *zap.SugaredLogger

	// Services
	generator qrgen.Generator
	picker    picker.Picker
	renderer  renderer.SymbolRenderer
	clipboard clipboard.Writer

	// UI components
	textEntry        *widget.Entry
	versionSelect    *widget.Select
	levelSelect      *widget.Select
	pictureEntry     *widget.Entry
	pictureBrowseBtn *widget.Button
	colorizedCheck   *widget.Check
	contrastEntry    *widget.Entry
	brightnessEntry  *widget.Entry
	nameEntry        *widget.Entry
	directoryEntry   *widget.Entry
	dirBrowseBtn     *widget.Button
	generateBtn      *widget.Button
	statusLabel      *widget.Label

	// State - UI thread only, no synchronization needed
	lastResult   *qrgen.Result
	resultWindow fyne.Window
}

// NewQRCodeApp creates the application window with the given configuration.
func NewQRCodeApp(cfg *config.Config, log *zap.SugaredLogger) *QRCodeApp {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log = logger.OrNop(log)

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnw("cannot resolve working directory", "error", err)
	}

	return newQRCodeApp(app.New(), cfg, log, cwd)
}

// newQRCodeApp wires the window around an existing fyne app; cwd seeds the output directory.
func newQRCodeApp(fyneApp fyne.App, cfg *config.Config, log *zap.SugaredLogger, cwd string) *QRCodeApp {
	applyTheme(fyneApp, cfg.Theme)
	fyneApp.SetIcon(theme.MediaPhotoIcon())

	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	qrApp := &QRCodeApp{
		app:         fyneApp,
		window:      window,
		config:      cfg,
		log:         log.Named("ui"),
		generator:   qrgen.NewAmazing(log.Named("qrgen"), cfg.SubcellPixels),
		renderer:    &renderer.TextRenderer{},
		clipboard:   clipboard.NewFyneWriter(fyneApp.Clipboard()),
		statusLabel: widget.NewLabel(msgReady),
	}
	qrApp.picker = picker.New(cfg.NativeDialog, window, func(err error) {
		qrApp.showError("Dialog Error", err)
	})

	window.SetContent(qrApp.createMainContent())
	qrApp.applyState(cfg.FormDefaults(cwd))
	return qrApp
}

// Run shows the window and blocks until it is closed.
func (a *QRCodeApp) Run() {
	a.enableDragDrop()
	a.window.ShowAndRun()
}

// createMainContent lays out the three form sections and the generate button.
func (a *QRCodeApp) createMainContent() fyne.CanvasObject {
	a.textEntry = widget.NewEntry()
	a.textEntry.SetPlaceHolder("https://example.com")

	// Image quality
	a.pictureEntry = widget.NewEntry()
	a.pictureBrowseBtn = widget.NewButtonWithIcon("Browse", theme.FolderOpenIcon(), a.handleSelectPicture)
	a.versionSelect = widget.NewSelect(form.VersionOptions(), nil)
	a.levelSelect = widget.NewSelect(form.Levels(), nil)
	a.colorizedCheck = widget.NewCheck("Colorized", nil)
	a.contrastEntry = widget.NewEntry()
	a.brightnessEntry = widget.NewEntry()

	imageForm := widget.NewForm(
		widget.NewFormItem("Picture:", container.NewBorder(nil, nil, nil, a.pictureBrowseBtn, a.pictureEntry)),
		widget.NewFormItem("Height/Width:", a.versionSelect),
		widget.NewFormItem("Error Correction Level:", a.levelSelect),
	)
	tuning := container.NewGridWithColumns(5,
		a.colorizedCheck,
		widget.NewLabel("Contrast:"), a.contrastEntry,
		widget.NewLabel("Brightness:"), a.brightnessEntry,
	)

	// Output
	a.nameEntry = widget.NewEntry()
	a.nameEntry.SetPlaceHolder("qrcode.png")
	a.directoryEntry = widget.NewEntry()
	a.dirBrowseBtn = widget.NewButtonWithIcon("Browse", theme.FolderOpenIcon(), a.handleSelectDirectory)

	outputForm := widget.NewForm(
		widget.NewFormItem("Filename:", a.nameEntry),
		widget.NewFormItem("Directory:", container.NewBorder(nil, nil, nil, a.dirBrowseBtn, a.directoryEntry)),
	)

	a.generateBtn = widget.NewButtonWithIcon("Generate QR Code", theme.ConfirmIcon(), a.handleGenerate)
	a.generateBtn.Importance = widget.HighImportance

	return container.NewVBox(
		sectionHeader(headerText),
		a.textEntry,
		sectionHeader(headerImage),
		imageForm,
		tuning,
		sectionHeader(headerOutput),
		outputForm,
		a.generateBtn,
		a.statusLabel,
	)
}

func sectionHeader(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// applyState copies a form state into the widgets.
func (a *QRCodeApp) applyState(s form.State) {
	a.textEntry.SetText(s.Text)
	a.versionSelect.SetSelected(strconv.Itoa(s.Version))
	a.levelSelect.SetSelected(string(s.Level))
	a.pictureEntry.SetText(s.Picture)
	a.colorizedCheck.SetChecked(s.Colorized)
	a.contrastEntry.SetText(formatFactor(s.Contrast))
	a.brightnessEntry.SetText(formatFactor(s.Brightness))
	a.nameEntry.SetText(s.OutputName)
	a.directoryEntry.SetText(s.OutputDir)
}

// collectState reads the widgets back into a form state.
func (a *QRCodeApp) collectState() (form.State, error) {
	version, err := strconv.Atoi(a.versionSelect.Selected)
	if err != nil {
		return form.State{}, fmt.Errorf("%w: %q", form.ErrVersionRange, a.versionSelect.Selected)
	}
	contrast, err := parseFactor("contrast", a.contrastEntry.Text)
	if err != nil {
		return form.State{}, err
	}
	brightness, err := parseFactor("brightness", a.brightnessEntry.Text)
	if err != nil {
		return form.State{}, err
	}

	return form.State{
		Text:       a.textEntry.Text,
		Version:    version,
		Level:      form.Level(a.levelSelect.Selected),
		Picture:    a.pictureEntry.Text,
		Colorized:  a.colorizedCheck.Checked,
		Contrast:   contrast,
		Brightness: brightness,
		OutputName: a.nameEntry.Text,
		OutputDir:  a.directoryEntry.Text,
	}, nil
}

func parseFactor(field, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", field, text)
	}
	return v, nil
}

// formatFactor always keeps a decimal point so 1 reads as "1.0".
func formatFactor(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// handleSelectPicture opens the picture chooser.
func (a *QRCodeApp) handleSelectPicture() {
	a.picker.ChoosePicture(a.onPictureChosen)
}

// onPictureChosen stores the picture and fills in a default output name if there is none.
func (a *QRCodeApp) onPictureChosen(path string) {
	s := form.State{Picture: a.pictureEntry.Text, OutputName: a.nameEntry.Text}
	if !s.ApplyPicture(path) {
		return // User cancelled
	}
	a.pictureEntry.SetText(s.Picture)
	a.nameEntry.SetText(s.OutputName)
	a.log.Debugw("picture selected", "path", s.Picture, "output", s.OutputName)
}

// handleSelectDirectory opens the output directory chooser.
func (a *QRCodeApp) handleSelectDirectory() {
	a.picker.ChooseDirectory(a.onDirectoryChosen)
}

func (a *QRCodeApp) onDirectoryChosen(path string) {
	s := form.State{OutputDir: a.directoryEntry.Text}
	if !s.ApplyDirectory(path) {
		return // User cancelled
	}
	a.directoryEntry.SetText(s.OutputDir)
}

// handleGenerate runs a generation and reports any failure in a dialog.
func (a *QRCodeApp) handleGenerate() {
	if err := a.generateQR(); err != nil {
		a.log.Errorw("qr generation failed", "error", err)
		a.statusLabel.SetText(msgFailed)
		a.showError("Generation Error", err)
	}
}

// generateQR collects the form, calls the generator and shows the result.
// It runs on the UI goroutine and blocks the window until the file is written.
func (a *QRCodeApp) generateQR() error {
	state, err := a.collectState()
	if err != nil {
		return err
	}
	params := state.Params()
	if err := params.Validate(); err != nil {
		return err
	}

	a.statusLabel.SetText(msgGenerating)
	a.log.Infow("generating qr code",
		"version", params.Version,
		"level", params.Level,
		"picture", params.Picture,
		"colorized", params.Colorized,
		"contrast", params.Contrast,
		"brightness", params.Brightness,
		"name", params.Name,
		"directory", params.Directory,
	)

	ctx, cancel := context.WithTimeout(context.Background(), a.config.GenerateTimeout)
	defer cancel()

	result, err := a.generator.Generate(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	a.lastResult = result
	a.log.Debugf("generated symbol\n%s", a.renderer.Render(result))

	if _, err := a.displayQRCode(result.Path); err != nil {
		return err
	}
	a.statusLabel.SetText(fmt.Sprintf(msgSaved, result.Version, result.Level, result.Path))
	return nil
}

// showError shows an error dialog over the main window.
func (a *QRCodeApp) showError(title string, err error) {
	showErrorIn(a.window, title, err)
}

func showErrorIn(w fyne.Window, title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), w)
}

// enableDragDrop lets users drop a picture or an output folder onto the window.
func (a *QRCodeApp) enableDragDrop() {
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) > 0 {
			a.handleDroppedURI(uris[0]) // Take first dropped item
		}
	})
}

func (a *QRCodeApp) handleDroppedURI(uri fyne.URI) {
	if uri.Scheme() != "file" {
		a.showError("Drop Error", errBadDrop)
		return
	}

	path := uri.Path()
	info, err := os.Stat(path)
	switch {
	case err != nil:
		a.showError("Drop Error", err)
	case info.IsDir():
		a.onDirectoryChosen(path)
	case form.IsImageFile(path):
		a.onPictureChosen(path)
	default:
		a.showError("Drop Error", errBadDrop)
	}
}
