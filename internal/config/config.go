// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for settings the renderer cannot use.
var ErrInvalid = errors.New("invalid config")

// Config holds all renderer settings.
type Config struct {
	Render     RenderConfig     `yaml:"render"`
	Camera     CameraConfig     `yaml:"camera"`
	Rasterizer RasterizerConfig `yaml:"rasterizer"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// RenderConfig holds output surface and projection settings.
type RenderConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FovY         float32 `yaml:"fov_y"` // degrees
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	Orthographic bool    `yaml:"orthographic"`
	Background   string  `yaml:"background"` // hex color
	LineWidth    float32 `yaml:"line_width"`
	Scale        float32 `yaml:"scale"` // uniform model scale
	Axes         bool    `yaml:"axes"`
}

// CameraConfig holds the orbit camera placement. Angles are in degrees.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
}

// RasterizerConfig mirrors projection.Options.
type RasterizerConfig struct {
	DrawNormals      bool `yaml:"draw_normals"`
	ShadeWithNormals bool `yaml:"shade_with_normals"`
	Fill             bool `yaml:"fill"`
	Stroke           bool `yaml:"stroke"`
	BackfaceCulling  bool `yaml:"backface_culling"`
}

// SceneConfig selects what gets drawn.
type SceneConfig struct {
	Name     string   `yaml:"name"`
	Segments int      `yaml:"segments"`
	Palette  []string `yaml:"palette"` // hex colors, cycled per fragment
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// KellyPalette is Kenneth Kelly's list of maximally contrasting colors,
// minus white and black.
var KellyPalette = []string{
	"#F3C300", "#875692", "#F38400", "#A1CAF1", "#BE0032",
	"#C2B280", "#848482", "#008856", "#E68FAC", "#0067A5",
	"#F99379", "#604E97", "#F6A600", "#B3446C", "#DCD300",
	"#882D17", "#8DB600", "#654522", "#E25822", "#2B3D26",
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      800,
			Height:     600,
			FovY:       60,
			Near:       0.1,
			Far:        100,
			Background: "#1E1E24",
			LineWidth:  1,
			Scale:      1,
			Axes:       true,
		},
		Camera: CameraConfig{
			Distance: 6,
			Pitch:    25,
			Yaw:      35,
		},
		Rasterizer: RasterizerConfig{
			Fill:            true,
			BackfaceCulling: true,
		},
		Scene: SceneConfig{
			Name:     "cylinder",
			Segments: 24,
			Palette:  append([]string(nil), KellyPalette...),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be rendered.
func (c *Config) Validate() error {
	switch {
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	case c.Render.Near <= 0 || c.Render.Far <= c.Render.Near:
		return fmt.Errorf("%w: clip range near=%g far=%g", ErrInvalid, c.Render.Near, c.Render.Far)
	case !c.Render.Orthographic && (c.Render.FovY <= 0 || c.Render.FovY >= 180):
		return fmt.Errorf("%w: fov_y %g", ErrInvalid, c.Render.FovY)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance %g", ErrInvalid, c.Camera.Distance)
	case c.Scene.Segments < 3:
		return fmt.Errorf("%w: scene segments %d", ErrInvalid, c.Scene.Segments)
	}
	return nil
}
