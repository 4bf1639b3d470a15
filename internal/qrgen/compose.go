package qrgen

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

const (
	quietZone         = 4 // modules
	subcellsPerModule = 3
	thresholdLevel    = 128
)

// renderPlain draws dark modules as solid squares on white.
func renderPlain(modules [][]bool, modulePixels int) image.Image {
	side := (len(modules) + 2*quietZone) * modulePixels
	dc := gg.NewContext(side, side)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for r, row := range modules {
		for c, dark := range row {
			if !dark {
				continue
			}
			x := float64((c + quietZone) * modulePixels)
			y := float64((r + quietZone) * modulePixels)
			dc.DrawRectangle(x, y, float64(modulePixels), float64(modulePixels))
		}
	}
	dc.Fill()
	return dc.Image()
}

// stylize fits the picture to side x side sub-cells and applies the colour,
// contrast and brightness settings. Contrast and brightness are factors where 1
// leaves the picture unchanged.
func stylize(picture image.Image, side int, colorized bool, contrast, brightness float64) *image.NRGBA {
	fitted := resize.Resize(uint(side), uint(side), picture, resize.Lanczos3)
	out := imaging.Overlay(imaging.New(side, side, color.White), fitted, image.Pt(0, 0), 1.0)

	if !colorized {
		out = imaging.Grayscale(out)
	}
	out = imaging.AdjustContrast(out, factorToPercent(contrast))
	out = imaging.AdjustBrightness(out, factorToPercent(brightness))
	if !colorized {
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			if c.R >= thresholdLevel {
				return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			return color.NRGBA{A: 255}
		})
	}
	return out
}

// factorToPercent maps an enhancement factor (1 = unchanged) onto imaging's -100..100 scale.
func factorToPercent(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(-100, math.Min(100, (f-1)*100))
}

// blend lays the symbol over a picture of exactly len(modules)*3 sub-cells per
// side. Each module keeps its own colour in the centre sub-cell; function
// patterns keep it everywhere so scanners can still lock on.
func blend(modules [][]bool, version int, picture *image.NRGBA, subcellPixels int) image.Image {
	n := len(modules)
	grid := n * subcellsPerModule
	cells := image.NewNRGBA(image.Rect(0, 0, grid, grid))
	origin := picture.Bounds().Min

	for r, row := range modules {
		for c, dark := range row {
			moduleColor := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if dark {
				moduleColor = color.NRGBA{A: 255}
			}
			solid := isFunctionModule(version, r, c)

			for i := 0; i < subcellsPerModule; i++ {
				for j := 0; j < subcellsPerModule; j++ {
					x := c*subcellsPerModule + j
					y := r*subcellsPerModule + i
					if solid || (i == 1 && j == 1) {
						cells.SetNRGBA(x, y, moduleColor)
						continue
					}
					cells.SetNRGBA(x, y, picture.NRGBAAt(origin.X+x, origin.Y+y))
				}
			}
		}
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, grid*subcellPixels, grid*subcellPixels))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), cells, cells.Bounds(), draw.Src, nil)

	margin := quietZone * subcellsPerModule * subcellPixels
	side := grid*subcellPixels + 2*margin
	canvas := imaging.New(side, side, color.White)
	return imaging.Paste(canvas, scaled, image.Pt(margin, margin))
}
