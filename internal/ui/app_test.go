package ui

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Akaiko1/amazing-qr/internal/config"
	"github.com/Akaiko1/amazing-qr/internal/form"
	"github.com/Akaiko1/amazing-qr/internal/qrgen"
)

type fakeGenerator struct {
	calls  []form.Params
	result *qrgen.Result
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, p form.Params) (*qrgen.Result, error) {
	f.calls = append(f.calls, p)
	return f.result, f.err
}

type fakePicker struct {
	picture   string
	directory string
}

func (f *fakePicker) ChoosePicture(onChosen func(string))   { onChosen(f.picture) }
func (f *fakePicker) ChooseDirectory(onChosen func(string)) { onChosen(f.directory) }

func newTestApp(t *testing.T, cwd string) *QRCodeApp {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return newQRCodeApp(a, config.DefaultConfig(), zaptest.NewLogger(t).Sugar(), cwd)
}

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(12, 12, color.Black), path))
	return path
}

func TestDefaultFieldValues(t *testing.T) {
	qrApp := newTestApp(t, "/start")

	assert.Equal(t, "7", qrApp.versionSelect.Selected)
	assert.Equal(t, "H", qrApp.levelSelect.Selected)
	assert.True(t, qrApp.colorizedCheck.Checked)
	assert.Equal(t, "1.0", qrApp.contrastEntry.Text)
	assert.Equal(t, "1.0", qrApp.brightnessEntry.Text)
	assert.Equal(t, "/start", qrApp.directoryEntry.Text)
	assert.Empty(t, qrApp.textEntry.Text)
	assert.Empty(t, qrApp.pictureEntry.Text)
	assert.Empty(t, qrApp.nameEntry.Text)

	state, err := qrApp.collectState()
	require.NoError(t, err)
	assert.Equal(t, form.Default("/start"), state)
}

func TestSelectorsOnlyOfferValidChoices(t *testing.T) {
	qrApp := newTestApp(t, "/start")

	assert.Equal(t, form.VersionOptions(), qrApp.versionSelect.Options)
	assert.Equal(t, []string{"L", "M", "Q", "H"}, qrApp.levelSelect.Options)

	qrApp.versionSelect.SetSelected("41")
	qrApp.levelSelect.SetSelected("Z")
	assert.Equal(t, "7", qrApp.versionSelect.Selected)
	assert.Equal(t, "H", qrApp.levelSelect.Selected)

	qrApp.versionSelect.SetSelected("40")
	qrApp.levelSelect.SetSelected("L")
	assert.Equal(t, "40", qrApp.versionSelect.Selected)
	assert.Equal(t, "L", qrApp.levelSelect.Selected)
}

func TestSelectPictureDerivesOutputName(t *testing.T) {
	qrApp := newTestApp(t, "/start")
	qrApp.picker = &fakePicker{picture: "photo.jpg"}

	test.Tap(qrApp.pictureBrowseBtn)

	assert.Equal(t, "photo.jpg", qrApp.pictureEntry.Text)
	assert.Equal(t, "photo_qrcode.jpg", qrApp.nameEntry.Text)
}

func TestSelectPictureKeepsExistingOutputName(t *testing.T) {
	qrApp := newTestApp(t, "/start")
	qrApp.picker = &fakePicker{picture: "photo.jpg"}
	qrApp.nameEntry.SetText("custom.png")

	test.Tap(qrApp.pictureBrowseBtn)

	assert.Equal(t, "photo.jpg", qrApp.pictureEntry.Text)
	assert.Equal(t, "custom.png", qrApp.nameEntry.Text)
}

func TestCancelledDialogsLeaveFieldsUnchanged(t *testing.T) {
	qrApp := newTestApp(t, "/start")
	qrApp.picker = &fakePicker{}
	qrApp.pictureEntry.SetText("old.png")

	test.Tap(qrApp.pictureBrowseBtn)
	test.Tap(qrApp.dirBrowseBtn)

	assert.Equal(t, "old.png", qrApp.pictureEntry.Text)
	assert.Empty(t, qrApp.nameEntry.Text)
	assert.Equal(t, "/start", qrApp.directoryEntry.Text)
}

func TestSelectDirectory(t *testing.T) {
	qrApp := newTestApp(t, "/start")
	qrApp.picker = &fakePicker{directory: "/tmp/out"}

	test.Tap(qrApp.dirBrowseBtn)

	assert.Equal(t, "/tmp/out", qrApp.directoryEntry.Text)
}

func TestGenerateInvokesGeneratorAndDisplaysResult(t *testing.T) {
	dir := t.TempDir()
	out := writeImage(t, dir, "out.png")
	qrApp := newTestApp(t, "/start")
	gen := &fakeGenerator{result: &qrgen.Result{Version: 7, Level: form.LevelH, Path: out, Bitmap: [][]bool{{true}}}}
	qrApp.generator = gen

	qrApp.textEntry.SetText("hello")
	qrApp.nameEntry.SetText("out.png")
	qrApp.directoryEntry.SetText(dir)
	test.Tap(qrApp.generateBtn)

	require.Len(t, gen.calls, 1)
	want := []any{"hello", 7, form.LevelH, "", true, 1.0, 1.0, "out.png", dir}
	assert.Equal(t, want, gen.calls[0].Values())

	require.NotNil(t, qrApp.resultWindow)
	assert.Equal(t, "QR Code - out.png", qrApp.resultWindow.Title())
	assert.Same(t, gen.result, qrApp.lastResult)
	assert.Contains(t, qrApp.statusLabel.Text, out)
}

func TestGenerateWithRealGenerator(t *testing.T) {
	dir := t.TempDir()
	qrApp := newTestApp(t, dir)

	qrApp.textEntry.SetText("https://example.com")
	qrApp.nameEntry.SetText("site.png")
	test.Tap(qrApp.generateBtn)

	require.NotNil(t, qrApp.lastResult)
	assert.Equal(t, filepath.Join(dir, "site.png"), qrApp.lastResult.Path)
	assert.FileExists(t, qrApp.lastResult.Path)
	require.NotNil(t, qrApp.resultWindow)
}

func TestGenerateFailures(t *testing.T) {
	cases := []struct {
		name      string
		setup     func(a *QRCodeApp)
		genCalled bool
	}{
		{"empty text", func(a *QRCodeApp) {}, false},
		{"bad contrast", func(a *QRCodeApp) {
			a.textEntry.SetText("hello")
			a.contrastEntry.SetText("abc")
		}, false},
		{"bad brightness", func(a *QRCodeApp) {
			a.textEntry.SetText("hello")
			a.brightnessEntry.SetText("")
		}, false},
		{"generator error", func(a *QRCodeApp) {
			a.textEntry.SetText("hello")
			a.generator.(*fakeGenerator).err = errors.New("disk full")
		}, true},
		{"missing output image", func(a *QRCodeApp) {
			a.textEntry.SetText("hello")
			a.generator.(*fakeGenerator).result = &qrgen.Result{Version: 7, Level: form.LevelH, Path: "/nonexistent/out.png"}
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qrApp := newTestApp(t, t.TempDir())
			gen := &fakeGenerator{}
			qrApp.generator = gen
			tc.setup(qrApp)

			test.Tap(qrApp.generateBtn)

			assert.Equal(t, tc.genCalled, len(gen.calls) == 1)
			assert.Equal(t, msgFailed, qrApp.statusLabel.Text)
			assert.Nil(t, qrApp.resultWindow)
		})
	}
}

func TestDroppedFiles(t *testing.T) {
	dir := t.TempDir()
	picture := writeImage(t, dir, "photo.png")
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("x"), 0o644))

	qrApp := newTestApp(t, "/start")

	qrApp.handleDroppedURI(storage.NewFileURI(notes))
	assert.Empty(t, qrApp.pictureEntry.Text)

	qrApp.handleDroppedURI(storage.NewFileURI(picture))
	assert.Equal(t, picture, qrApp.pictureEntry.Text)
	assert.Equal(t, "photo_qrcode.png", qrApp.nameEntry.Text)

	qrApp.handleDroppedURI(storage.NewFileURI(dir))
	assert.Equal(t, dir, qrApp.directoryEntry.Text)
}

func TestDarkThemeApplied(t *testing.T) {
	qrApp := newTestApp(t, "/start")

	got := qrApp.app.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantLight)
	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	assert.Equal(t, want, got)
}

func TestFormatFactor(t *testing.T) {
	assert.Equal(t, "1.0", formatFactor(1))
	assert.Equal(t, "1.25", formatFactor(1.25))
	assert.Equal(t, "0.0", formatFactor(0))
}
