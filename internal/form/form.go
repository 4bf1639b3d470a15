// Package form holds the QR form state and the typed parameter record passed to the generator.
package form

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	MinVersion = 1
	MaxVersion = 40

	DefaultVersion    = 7
	DefaultLevel      = LevelH
	DefaultContrast   = 1.0
	DefaultBrightness = 1.0

	outputSuffix = "_qrcode"
)

var (
	ErrEmptyText          = errors.New("text to encode is empty")
	ErrVersionRange       = errors.New("version must be between 1 and 40")
	ErrInvalidLevel       = errors.New("error correction level must be one of L, M, Q, H")
	ErrUnsupportedPicture = errors.New("unsupported picture format")
	ErrUnsupportedOutput  = errors.New("unsupported output format")
	ErrDirectoryMissing   = errors.New("output directory does not exist")
)

// ImageExtensions lists the file extensions accepted for pictures and output files.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Level is a QR error-correction level.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// Levels returns the selectable levels in increasing order of redundancy.
func Levels() []string {
	return []string{string(LevelL), string(LevelM), string(LevelQ), string(LevelH)}
}

// ParseLevel accepts a level letter in either case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Valid reports whether l is one of L, M, Q, H.
func (l Level) Valid() bool {
	switch l {
	case LevelL, LevelM, LevelQ, LevelH:
		return true
	}
	return false
}

// VersionOptions returns "1" through "40" for the version selector.
func VersionOptions() []string {
	opts := make([]string, 0, MaxVersion)
	for v := MinVersion; v <= MaxVersion; v++ {
		opts = append(opts, strconv.Itoa(v))
	}
	return opts
}

// State is the window's form state. Every field maps to one input widget.
type State struct {
	Text       string  `json:"text" mapstructure:"text"`
	Version    int     `json:"version" mapstructure:"version"`
	Level      Level   `json:"level" mapstructure:"level"`
	Picture    string  `json:"picture" mapstructure:"picture"`
	Colorized  bool    `json:"colorized" mapstructure:"colorized"`
	Contrast   float64 `json:"contrast" mapstructure:"contrast"`
	Brightness float64 `json:"brightness" mapstructure:"brightness"`
	OutputName string  `json:"output_name" mapstructure:"output_name"`
	OutputDir  string  `json:"output_dir" mapstructure:"output_dir"`
}

// Default returns the state a fresh window opens with.
func Default(cwd string) State {
	return State{
		Version:    DefaultVersion,
		Level:      DefaultLevel,
		Colorized:  true,
		Contrast:   DefaultContrast,
		Brightness: DefaultBrightness,
		OutputDir:  cwd,
	}
}

// ApplyPicture stores a chosen picture path. An empty path means the dialog was
// cancelled and leaves the state untouched. The output name is derived from the
// picture only when none is set yet.
func (s *State) ApplyPicture(path string) bool {
	if path == "" {
		return false
	}
	s.Picture = path
	if s.OutputName == "" {
		s.OutputName = DefaultOutputName(path)
	}
	return true
}

// ApplyDirectory stores a chosen output directory; empty means cancelled.
func (s *State) ApplyDirectory(path string) bool {
	if path == "" {
		return false
	}
	s.OutputDir = path
	return true
}

// DefaultOutputName turns "dir/photo.jpg" into "photo_qrcode.jpg".
func DefaultOutputName(picture string) string {
	base := filepath.Base(picture)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + outputSuffix + ext
}

// Params builds the generator record from the state.
func (s State) Params() Params {
	return Params{
		Text:       s.Text,
		Version:    s.Version,
		Level:      s.Level,
		Picture:    s.Picture,
		Colorized:  s.Colorized,
		Contrast:   s.Contrast,
		Brightness: s.Brightness,
		Name:       s.OutputName,
		Directory:  s.OutputDir,
	}
}

// Params is the positional argument list of a generation run.
type Params struct {
	Text       string
	Version    int
	Level      Level
	Picture    string
	Colorized  bool
	Contrast   float64
	Brightness float64
	Name       string
	Directory  string
}

// Values returns the nine parameters in positional order.
func (p Params) Values() []any {
	return []any{
		p.Text,
		p.Version,
		p.Level,
		p.Picture,
		p.Colorized,
		p.Contrast,
		p.Brightness,
		p.Name,
		p.Directory,
	}
}

// Validate checks the record before it is handed to a generator.
// Contrast and brightness are passed through unchecked.
func (p Params) Validate() error {
	if p.Text == "" {
		return ErrEmptyText
	}
	if p.Version < MinVersion || p.Version > MaxVersion {
		return fmt.Errorf("%w: got %d", ErrVersionRange, p.Version)
	}
	if !p.Level.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, p.Level)
	}
	if p.Picture != "" && !IsImageFile(p.Picture) {
		return fmt.Errorf("%w: %s", ErrUnsupportedPicture, filepath.Base(p.Picture))
	}
	if p.Name != "" && !IsImageFile(p.Name) {
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, p.Name)
	}
	if p.Directory != "" {
		info, err := os.Stat(p.Directory)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrDirectoryMissing, p.Directory)
		}
	}
	return nil
}

// IsImageFile reports whether path has one of ImageExtensions.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
