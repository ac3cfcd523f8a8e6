package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GBraga29/ProjetoPG/internal/input"
	"github.com/GBraga29/ProjetoPG/internal/logger"
	"github.com/GBraga29/ProjetoPG/internal/scene"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/demo.yaml"

// Environment overrides, applied after the file (and after .env is loaded).
const (
	EnvVariant      = "DEMO_VARIANT"
	EnvShaderSource = "DEMO_SHADER_SOURCE"
	EnvLogPath      = "DEMO_LOG_PATH"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the demo configuration.
type Config struct {
	Window   Window        `yaml:"window"`
	Variant  scene.Variant `yaml:"variant"`
	Shaders  Shaders       `yaml:"shaders"`
	Textures Textures      `yaml:"textures"`
	Keys     Keys          `yaml:"keys"`
	Debug    Debug         `yaml:"debug"`
	Log      Log           `yaml:"log"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Shaders.Source is a directory or an http(s) base URL holding the custom shader pair.
// Watch reloads a directory source when its files change.
type Shaders struct {
	Source  string        `yaml:"source"`
	Timeout time.Duration `yaml:"timeout"`
	Watch   bool          `yaml:"watch"`
}

// Textures holds the square sizes of the generated textures.
type Textures struct {
	Checkerboard int `yaml:"checkerboard"`
	Gradient     int `yaml:"gradient"`
}

// Keys holds single-letter bindings.
type Keys struct {
	ToggleCamera string `yaml:"toggle_camera"`
	CycleColor   string `yaml:"cycle_color"`
}

// Debug overlays; FPS and heap are off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowHelp     bool `yaml:"show_help"`
	ShowLog      bool `yaml:"show_log"`
}

type Log struct {
	Path string `yaml:"path"`
	Echo bool   `yaml:"echo"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "ProjetoPG - 3D scene",
			TargetFPS: 60,
		},
		Variant: scene.VariantClassic,
		Shaders: Shaders{
			Source:  "assets/shaders",
			Timeout: 5 * time.Second,
		},
		Textures: Textures{
			Checkerboard: scene.DefaultCheckerSize,
			Gradient:     scene.DefaultGradientSize,
		},
		Keys:  Keys{ToggleCamera: "C", CycleColor: "V"},
		Debug: Debug{ShowHelp: true, ShowLog: true},
		Log:   Log{Path: logger.DefaultPath, Echo: true},
	}
}

// Load reads path (DefaultPath if empty) over the defaults, then applies environment
// overrides and validates. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvVariant); ok && v != "" {
		c.Variant = scene.Variant(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := lookup(EnvShaderSource); ok && v != "" {
		c.Shaders.Source = v
	}
	if v, ok := lookup(EnvLogPath); ok && v != "" {
		c.Log.Path = v
	}
}

// Validate checks ranges and bindings. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	switch c.Variant {
	case scene.VariantClassic, scene.VariantShader:
	default:
		return fmt.Errorf("%w: variant %q (want %q or %q)", ErrInvalid, c.Variant, scene.VariantClassic, scene.VariantShader)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	}
	if c.Textures.Checkerboard <= 0 || c.Textures.Gradient <= 0 {
		return fmt.Errorf("%w: texture sizes %d/%d", ErrInvalid, c.Textures.Checkerboard, c.Textures.Gradient)
	}
	if c.Shaders.Timeout < 0 {
		return fmt.Errorf("%w: shader timeout %s", ErrInvalid, c.Shaders.Timeout)
	}
	toggle, err := input.ParseKey(c.Keys.ToggleCamera)
	if err != nil {
		return fmt.Errorf("%w: toggle_camera: %v", ErrInvalid, err)
	}
	cycle, err := input.ParseKey(c.Keys.CycleColor)
	if err != nil {
		return fmt.Errorf("%w: cycle_color: %v", ErrInvalid, err)
	}
	if toggle == cycle {
		return fmt.Errorf("%w: toggle_camera and cycle_color both bound to %s", ErrInvalid, toggle)
	}
	return nil
}
