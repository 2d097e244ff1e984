package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config alone.
type Flags struct {
	Config    string
	Debug     bool
	Width     int
	Height    int
	Scene     string
	Normals   bool
	Wireframe bool
}

// CommandLine holds the overrides registered on flag.CommandLine by
// ParseFlags.
var CommandLine = &Flags{}

// Register binds the override flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Output width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Output height in pixels")
	fs.StringVar(&f.Scene, "scene", "", "Scene to render")
	fs.BoolVar(&f.Normals, "normals", false, "Draw fragment normals")
	fs.BoolVar(&f.Wireframe, "wireframe", false, "Stroke outlines instead of filling")
}

// ParseFlags registers CommandLine and parses os.Args. Call this early in
// main().
func ParseFlags() {
	CommandLine.Register(flag.CommandLine)
	flag.Parse()
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Render.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Render.Height = f.Height
	}
	if f.Scene != "" {
		cfg.Scene.Name = f.Scene
	}
	if f.Normals {
		cfg.Rasterizer.DrawNormals = true
	}
	if f.Wireframe {
		cfg.Rasterizer.Fill = false
		cfg.Rasterizer.Stroke = true
	}
}
