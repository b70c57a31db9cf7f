// Package config loads ledcanvas settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ledcanvas"
	"github.com/gogpu/ledcanvas/text"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Format names accepted by Parse.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config is the file configuration.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas" toml:"canvas"`
	Style  StyleConfig  `yaml:"style" toml:"style"`
	Text   TextConfig   `yaml:"text" toml:"text"`
	Frame  FrameConfig  `yaml:"frame" toml:"frame"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// CanvasConfig sizes the LED canvas.
type CanvasConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty"`
}

// StyleConfig holds context defaults.
type StyleConfig struct {
	DefaultColor    string  `yaml:"default_color,omitempty" toml:"default_color,omitempty"`
	ShadowBlurScale float64 `yaml:"shadow_blur_scale,omitempty" toml:"shadow_blur_scale,omitempty"`
	Tolerance       float64 `yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
}

// TextConfig configures fonts.
type TextConfig struct {
	// FontDir is scanned for .ttf and .otf files.
	FontDir string `yaml:"font_dir,omitempty" toml:"font_dir,omitempty"`
	Font    string `yaml:"font,omitempty" toml:"font,omitempty"`
}

// FrameConfig drives the render loop.
type FrameConfig struct {
	Count int     `yaml:"count" toml:"count"`
	FPS   float64 `yaml:"fps" toml:"fps"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// LogConfig selects the log level: debug, info, warn, error or off.
type LogConfig struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 64, Height: 16, Background: "#000000"},
		Style: StyleConfig{
			DefaultColor:    "#000000",
			ShadowBlurScale: ledcanvas.DefaultShadowBlurScale,
			Tolerance:       0.1,
		},
		Text:  TextConfig{Font: "12px sans-serif"},
		Frame: FrameConfig{Count: 60, FPS: 30, Speed: 1},
		Log:   LogConfig{Level: "off"},
	}
}

// Load reads path, choosing the decoder by extension (.yaml, .yml or
// .toml). Missing keys keep their Default values.
func Load(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format on top of Default.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes c in the given format.
func (c *Config) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Validate checks ranges and colour syntax.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	for name, v := range map[string]string{
		"canvas.background":   c.Canvas.Background,
		"style.default_color": c.Style.DefaultColor,
	} {
		if v == "" {
			continue
		}
		if _, err := ledcanvas.ParseHex(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Frame.Count < 0 {
		errs = append(errs, fmt.Errorf("frame.count %d", c.Frame.Count))
	}
	if c.Frame.FPS <= 0 {
		errs = append(errs, fmt.Errorf("frame.fps %v", c.Frame.FPS))
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok && c.Log.Level != "" {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Background returns the parsed canvas background colour, opaque black
// when unset.
func (c *Config) Background() ledcanvas.Color {
	col, err := ledcanvas.ParseHex(c.Canvas.Background)
	if err != nil {
		return ledcanvas.Black
	}
	return col
}

// Options converts the style and text sections into context options.
// When FontDir is set, its fonts are loaded into a new registry.
func (c *Config) Options() ([]ledcanvas.Option, error) {
	var opts []ledcanvas.Option
	if c.Style.DefaultColor != "" {
		col, err := ledcanvas.ParseHex(c.Style.DefaultColor)
		if err != nil {
			return nil, fmt.Errorf("config: style.default_color: %w", err)
		}
		opts = append(opts, ledcanvas.WithDefaultColor(col))
	}
	if c.Style.ShadowBlurScale > 0 {
		opts = append(opts, ledcanvas.WithShadowBlurScale(c.Style.ShadowBlurScale))
	}
	if c.Style.Tolerance > 0 {
		opts = append(opts, ledcanvas.WithTolerance(c.Style.Tolerance))
	}
	if c.Text.FontDir != "" {
		reg := text.NewRegistry()
		if _, err := reg.LoadDir(c.Text.FontDir); err != nil {
			return nil, fmt.Errorf("config: text.font_dir: %w", err)
		}
		opts = append(opts, ledcanvas.WithFontRegistry(reg))
	}
	return opts, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
	"off":   slog.LevelError + 4,
}

// Logger returns a text logger writing to w at the configured level, or
// nil when logging is off.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(c.Log.Level)]
	if !ok || strings.EqualFold(c.Log.Level, "off") {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
