package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/glsprite"
	"github.com/db47h/glsprite/gl"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the demo scene.
//
type Config struct {
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Assets   AssetConfig    `toml:"assets" yaml:"assets"`
	LogLevel string         `toml:"log_level" yaml:"log_level"`
	Clear    [4]float32     `toml:"clear" yaml:"clear"`
	Zoom     float64        `toml:"zoom" yaml:"zoom"`
	Info     InfoConfig     `toml:"info" yaml:"info"`
	Sprites  []SpriteConfig `toml:"sprite" yaml:"sprites"`
}

type WindowConfig struct {
	Title      string `toml:"title" yaml:"title"`
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	FullScreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	VSync      int    `toml:"vsync" yaml:"vsync"`
}

type AssetConfig struct {
	Roots    []string `toml:"roots" yaml:"roots"`
	Images   string   `toml:"images" yaml:"images"`
	Shaders  string   `toml:"shaders" yaml:"shaders"`
	Vertex   string   `toml:"vertex" yaml:"vertex"`     // empty selects the built-in shader
	Fragment string   `toml:"fragment" yaml:"fragment"` // empty selects the built-in shader
	Fonts    string   `toml:"fonts" yaml:"fonts"`
	Font     string   `toml:"font" yaml:"font"` // empty selects the built-in Go font
}

// InfoConfig configures the on-screen frame rate box.
//
type InfoConfig struct {
	Show     bool    `toml:"show" yaml:"show"`
	FontSize float64 `toml:"font_size" yaml:"font_size"`
}

type SpriteConfig struct {
	Image    string     `toml:"image" yaml:"image"`
	Position [2]float64 `toml:"position" yaml:"position"`
	Size     [2]float64 `toml:"size" yaml:"size"`
	Frames   [2]int     `toml:"frames" yaml:"frames"` // columns, rows
	FPS      float64    `toml:"fps" yaml:"fps"`
}

func defaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "glsprite demo", Width: 800, Height: 600, VSync: 1},
		Assets: AssetConfig{
			Roots:    []string{"assets", "cmd/demo/assets"},
			Images:   "images",
			Shaders:  "shaders",
			Vertex:   "sprite.vert",
			Fragment: "sprite.frag",
			Fonts:    "fonts",
		},
		Info:     InfoConfig{Show: true, FontSize: 14},
		LogLevel: "info",
		Clear:    [4]float32{.2, .2, .2, 1},
		Zoom:     1,
	}
}

// LoadConfig reads the scene file name. The format is selected by the file
// extension: .toml, .yaml or .yml.
//
func LoadConfig(name string) (*Config, error) {
	cfg := defaultConfig()
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		md, err := toml.DecodeFile(name, &cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "read scene %s", name)
		}
		for _, k := range md.Undecoded() {
			glsprite.Logger().Warn("unknown scene key", "file", name, "key", k.String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrap(err, "read scene")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "read scene %s", name)
		}
	default:
		return nil, errors.Errorf("read scene %s: unsupported format %q", name, ext)
	}
	if err := cfg.check(); err != nil {
		return nil, errors.Wrapf(err, "scene %s", name)
	}
	return &cfg, nil
}

func (cfg *Config) check() error {
	if _, err := cfg.Level(); err != nil {
		return err
	}
	if cfg.Zoom <= 0 {
		return errors.Errorf("invalid zoom %g", cfg.Zoom)
	}
	if cfg.Info.FontSize <= 0 {
		return errors.Errorf("invalid font size %g", cfg.Info.FontSize)
	}
	if len(cfg.Assets.Roots) == 0 {
		return errors.New("no asset roots")
	}
	for i := range cfg.Sprites {
		s := &cfg.Sprites[i]
		if s.Image == "" {
			return errors.Errorf("sprite %d: no image", i)
		}
		if s.Size == [2]float64{} {
			s.Size = [2]float64{glsprite.DefaultSize.X, glsprite.DefaultSize.Y}
		}
		if s.Size[0] <= 0 || s.Size[1] <= 0 {
			return errors.Errorf("sprite %d: invalid size %v", i, s.Size)
		}
		for j := range s.Frames {
			if s.Frames[j] <= 0 {
				s.Frames[j] = 1
			}
		}
		if s.FPS < 0 {
			return errors.Errorf("sprite %d: negative fps", i)
		}
	}
	return nil
}

// Level returns the configured log level.
//
func (cfg *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, errors.Wrap(err, "log level")
	}
	return l, nil
}

// ClearColor returns the background color.
//
func (cfg *Config) ClearColor() gl.Color {
	c := cfg.Clear
	return gl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
