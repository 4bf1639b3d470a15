// Package qrgen turns a form.Params record into a QR code image file, optionally
// blended over a background picture.
package qrgen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/Akaiko1/amazing-qr/internal/form"
	"github.com/Akaiko1/amazing-qr/internal/logger"
)

const (
	defaultOutputName    = "qrcode.png"
	defaultSubcellPixels = 3
)

var (
	ErrTooLong       = errors.New("text does not fit in a version 40 symbol")
	ErrPictureDecode = errors.New("failed to decode picture")
)

// Result describes a generated symbol. Version may be larger than requested when
// the text did not fit.
type Result struct {
	Version int
	Level   form.Level
	Path    string
	Bitmap  [][]bool // dark modules, without quiet zone
}

// Generator produces a QR code image from form parameters.
type Generator interface {
	Generate(ctx context.Context, p form.Params) (*Result, error)
}

// Amazing renders plain symbols, or symbols whose light and dark modules let a
// background picture show through around each module centre.
type Amazing struct {
	log           *zap.SugaredLogger
	subcellPixels int
}

// NewAmazing creates a generator. subcellPixels is the edge length of one third
// of a module in the output image.
func NewAmazing(log *zap.SugaredLogger, subcellPixels int) *Amazing {
	if subcellPixels < 1 {
		subcellPixels = defaultSubcellPixels
	}
	return &Amazing{
		log:           logger.OrNop(log),
		subcellPixels: subcellPixels,
	}
}

// Generate encodes p.Text, renders it and writes the image to p.Directory/p.Name.
func (g *Amazing) Generate(ctx context.Context, p form.Params) (*Result, error) {
	start := time.Now()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	name := p.Name
	if name == "" {
		name = defaultOutputName
	}
	dir := p.Directory
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve output directory: %w", err)
		}
		dir = wd
	}

	code, err := encode(p.Text, p.Version, p.Level)
	if err != nil {
		return nil, err
	}
	if code.VersionNumber != p.Version {
		g.log.Infow("version raised to fit text", "requested", p.Version, "used", code.VersionNumber)
	}
	modules := trimQuietZone(code.Bitmap(), code.VersionNumber)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation cancelled: %w", err)
	}

	var img image.Image
	if p.Picture == "" {
		img = renderPlain(modules, g.subcellPixels*subcellsPerModule)
	} else {
		picture, err := imaging.Open(p.Picture, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrPictureDecode, p.Picture, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}
		styled := stylize(picture, len(modules)*subcellsPerModule, p.Colorized, p.Contrast, p.Brightness)
		img = blend(modules, code.VersionNumber, styled, g.subcellPixels)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation cancelled: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return nil, fmt.Errorf("failed to save %q: %w", path, err)
	}

	g.log.Debugw("qr code written",
		"path", path,
		"version", code.VersionNumber,
		"level", p.Level,
		"picture", p.Picture != "",
		"elapsed", time.Since(start),
	)

	return &Result{
		Version: code.VersionNumber,
		Level:   p.Level,
		Path:    path,
		Bitmap:  modules,
	}, nil
}
