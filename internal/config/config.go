package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Akaiko1/amazing-qr/internal/form"
)

const (
	configName = "amzqr"
	envPrefix  = "AMZQR"

	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeSystem = "system"
)

// Config defines window, dialog, form-default, rendering and logging settings.
type Config struct {
	WindowWidth  int
	WindowHeight int
	Theme        string
	NativeDialog bool

	Version    int
	Level      string
	Colorized  bool
	Contrast   float64
	Brightness float64
	OutputDir  string // empty means the working directory at startup

	SubcellPixels   int
	GenerateTimeout time.Duration

	Debug     bool
	LogToFile bool
	LogsDir   string
}

// DefaultConfig returns the built-in settings: a dark 640x520 window, version 7, level H.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:     640,
		WindowHeight:    520,
		Theme:           ThemeDark,
		NativeDialog:    false,
		Version:         form.DefaultVersion,
		Level:           string(form.DefaultLevel),
		Colorized:       true,
		Contrast:        form.DefaultContrast,
		Brightness:      form.DefaultBrightness,
		SubcellPixels:   3,
		GenerateTimeout: 30 * time.Second,
	}
}

// Load reads amzqr.yaml from path (or the default search locations when path is
// empty) and AMZQR_* environment variables on top of DefaultConfig. A missing
// config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		WindowWidth:     v.GetInt("window.width"),
		WindowHeight:    v.GetInt("window.height"),
		Theme:           strings.ToLower(v.GetString("window.theme")),
		NativeDialog:    v.GetBool("dialogs.native"),
		Version:         v.GetInt("defaults.version"),
		Level:           v.GetString("defaults.level"),
		Colorized:       v.GetBool("defaults.colorized"),
		Contrast:        v.GetFloat64("defaults.contrast"),
		Brightness:      v.GetFloat64("defaults.brightness"),
		OutputDir:       v.GetString("defaults.output-dir"),
		SubcellPixels:   v.GetInt("render.subcell-pixels"),
		GenerateTimeout: v.GetDuration("generate.timeout"),
		Debug:           v.GetBool("log.debug"),
		LogToFile:       v.GetBool("log.to-file"),
		LogsDir:         v.GetString("log.dir"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("window.width", d.WindowWidth)
	v.SetDefault("window.height", d.WindowHeight)
	v.SetDefault("window.theme", d.Theme)
	v.SetDefault("dialogs.native", d.NativeDialog)
	v.SetDefault("defaults.version", d.Version)
	v.SetDefault("defaults.level", d.Level)
	v.SetDefault("defaults.colorized", d.Colorized)
	v.SetDefault("defaults.contrast", d.Contrast)
	v.SetDefault("defaults.brightness", d.Brightness)
	v.SetDefault("defaults.output-dir", d.OutputDir)
	v.SetDefault("render.subcell-pixels", d.SubcellPixels)
	v.SetDefault("generate.timeout", d.GenerateTimeout)
	v.SetDefault("log.debug", d.Debug)
	v.SetDefault("log.to-file", d.LogToFile)
	v.SetDefault("log.dir", d.LogsDir)
}

// Validate rejects defaults the form widgets could not display.
func (c *Config) Validate() error {
	if c.Version < form.MinVersion || c.Version > form.MaxVersion {
		return fmt.Errorf("invalid defaults.version: %w", form.ErrVersionRange)
	}
	if _, err := form.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid defaults.level: %w", err)
	}
	switch c.Theme {
	case ThemeDark, ThemeLight, ThemeSystem:
	default:
		return fmt.Errorf("invalid window.theme %q", c.Theme)
	}
	if c.SubcellPixels < 1 {
		return fmt.Errorf("render.subcell-pixels must be positive, got %d", c.SubcellPixels)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("generate.timeout must be positive, got %s", c.GenerateTimeout)
	}
	return nil
}

// FormDefaults returns the state a new window opens with. cwd fills the output
// directory when none is configured.
func (c *Config) FormDefaults(cwd string) form.State {
	s := form.Default(cwd)
	s.Version = c.Version
	if l, err := form.ParseLevel(c.Level); err == nil {
		s.Level = l
	}
	s.Colorized = c.Colorized
	s.Contrast = c.Contrast
	s.Brightness = c.Brightness
	if c.OutputDir != "" {
		s.OutputDir = c.OutputDir
	}
	return s
}
