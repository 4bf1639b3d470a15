package renderer

import (
	"fmt"
	"strings"

	"github.com/Akaiko1/amazing-qr/internal/qrgen"
)

const (
	// Half-block characters: upper module row, lower module row
	blockBoth  = "█"
	blockUpper = "▀"
	blockLower = "▄"
	blockNone  = " "

	quietZone = 2 // modules; terminals rarely need the full four
	ruleWidth = 50
)

// SymbolRenderer defines the interface for rendering a generated QR code as text.
type SymbolRenderer interface {
	Render(result *qrgen.Result) string
}

// TextRenderer draws a symbol with half-block characters, two module rows per line.
// Dark modules are drawn as light glyphs so the output scans on dark terminals.
type TextRenderer struct {
	Inverse bool // draw dark modules as filled glyphs instead
}

// Render returns a header naming the output file, followed by the symbol.
func (r *TextRenderer) Render(result *qrgen.Result) string {
	if result == nil || len(result.Bitmap) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("QR Code v%d-%s: %s\n", result.Version, result.Level, result.Path))
	builder.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	size := len(result.Bitmap) + 2*quietZone
	for y := 0; y < size; y += 2 {
		for x := 0; x < size; x++ {
			builder.WriteString(r.glyph(r.filled(result.Bitmap, size, x, y), r.filled(result.Bitmap, size, x, y+1)))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// filled reports whether the glyph cell at (x, y), quiet zone included, is painted.
func (r *TextRenderer) filled(bitmap [][]bool, size, x, y int) bool {
	if y >= size {
		return false
	}
	row, col := y-quietZone, x-quietZone
	dark := false
	if row >= 0 && row < len(bitmap) && col >= 0 && col < len(bitmap[row]) {
		dark = bitmap[row][col]
	}
	if r.Inverse {
		return dark
	}
	return !dark
}

func (r *TextRenderer) glyph(upper, lower bool) string {
	switch {
	case upper && lower:
		return blockBoth
	case upper:
		return blockUpper
	case lower:
		return blockLower
	default:
		return blockNone
	}
}
