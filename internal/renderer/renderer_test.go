package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/amazing-qr/internal/form"
	"github.com/Akaiko1/amazing-qr/internal/qrgen"
)

func TestRenderNil(t *testing.T) {
	r := &TextRenderer{}
	assert.Empty(t, r.Render(nil))
	assert.Empty(t, r.Render(&qrgen.Result{}))
}

func TestRenderLayout(t *testing.T) {
	result := &qrgen.Result{
		Version: 1,
		Level:   form.LevelM,
		Path:    "/tmp/out.png",
		Bitmap: [][]bool{
			{true, false},
			{false, true},
		},
	}

	out := (&TextRenderer{Inverse: true}).Render(result)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 2+1+3) // header, rule, blank, (2+4)/2 symbol rows
	assert.Equal(t, "QR Code v1-M: /tmp/out.png", lines[0])
	assert.Equal(t, strings.Repeat("=", 50), lines[1])
	assert.Equal(t, "", lines[2])

	// quiet zone top row, then the symbol, then quiet zone bottom
	assert.Equal(t, strings.Repeat(" ", 6), lines[3])
	assert.Equal(t, "  "+blockUpper+blockLower+"  ", lines[4])
	assert.Equal(t, strings.Repeat(" ", 6), lines[5])
}

func TestRenderDefaultPaintsLightModules(t *testing.T) {
	result := &qrgen.Result{Version: 1, Level: form.LevelL, Path: "x.png", Bitmap: [][]bool{{true}}}

	out := (&TextRenderer{}).Render(result)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 1 module + 4 quiet: rows (0,1) (2,3) (4,-)
	require.Len(t, lines, 3+3)
	assert.Equal(t, strings.Repeat(blockBoth, 5), lines[3])
	assert.Equal(t, blockBoth+blockBoth+blockLower+blockBoth+blockBoth, lines[4])
	assert.Equal(t, strings.Repeat(blockUpper, 5), lines[5])
}
