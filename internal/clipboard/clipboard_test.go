package clipboard

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/amazing-qr/internal/form"
	"github.com/Akaiko1/amazing-qr/internal/qrgen"
	"github.com/Akaiko1/amazing-qr/internal/renderer"
)

func TestFyneWriter(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := NewFyneWriter(a.Clipboard())
	require.NoError(t, w.SetContent("hello"))
	assert.Equal(t, "hello", a.Clipboard().Content())
}

func TestFyneWriterUnavailable(t *testing.T) {
	assert.ErrorIs(t, NewFyneWriter(nil).SetContent("x"), ErrUnavailable)
}

type memWriter struct{ content string }

func (m *memWriter) SetContent(content string) error {
	m.content = content
	return nil
}

func TestCopyText(t *testing.T) {
	w := &memWriter{}
	result := &qrgen.Result{Version: 1, Level: form.LevelH, Path: "/tmp/q.png", Bitmap: [][]bool{{true}}}

	r := &renderer.TextRenderer{}
	require.NoError(t, CopyText(w, r, result))
	assert.Equal(t, r.Render(result), w.content)

	assert.ErrorIs(t, CopyText(w, r, nil), ErrNothingToCopy)
}
