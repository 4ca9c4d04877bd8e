// Package config holds the optional settings of the viewer. Without a
// config file the viewer runs with the defaults below.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Assets struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Model    string `yaml:"model"`
}

type Render struct {
	ClearColor      string        `yaml:"clear_color"` // #rrggbb
	DegreesPerFrame float32       `yaml:"degrees_per_frame"`
	FPSInterval     time.Duration `yaml:"fps_interval"`
}

type Config struct {
	Window Window `yaml:"window"`
	Assets Assets `yaml:"assets"`
	Render Render `yaml:"render"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Triangle",
			VSync:  true,
		},
		Assets: Assets{
			Vertex:   "vertex.glsl",
			Fragment: "fragment.glsl",
			Model:    "dragon.obj",
		},
		Render: Render{
			ClearColor:      "#336666",
			DegreesPerFrame: 0.05,
			FPSInterval:     5 * time.Second,
		},
	}
}

// Load reads a yaml config on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Assets.Vertex == "" || c.Assets.Fragment == "" || c.Assets.Model == "" {
		return errors.New("asset paths must not be empty")
	}

	if _, err := ParseColor(c.Render.ClearColor); err != nil {
		return err
	}

	if c.Render.FPSInterval < 0 {
		return fmt.Errorf("negative fps interval %v", c.Render.FPSInterval)
	}

	return nil
}

// Color returns the parsed clear color, black if it does not parse.
func (r Render) Color() mgl32.Vec4 {
	c, err := ParseColor(r.ClearColor)
	if err != nil {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	return c
}

// ParseColor converts #rrggbb (or rrggbb) to an opaque rgba color.
func ParseColor(s string) (mgl32.Vec4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mgl32.Vec4{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return mgl32.Vec4{
		float32(v>>16&255) / 255,
		float32(v>>8&255) / 255,
		float32(v&255) / 255,
		1,
	}, nil
}
