// meshrender renders the demo scenes headlessly and exports their meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/projection/internal/camera"
	"github.com/Faultbox/projection/internal/config"
	"github.com/Faultbox/projection/internal/logger"
	"github.com/Faultbox/projection/internal/render"
	"github.com/Faultbox/projection/internal/scene"
	"github.com/Faultbox/projection/internal/surface"
	"github.com/Faultbox/projection/pkg/mesh"
	"github.com/Faultbox/projection/pkg/meshio"
	"github.com/Faultbox/projection/pkg/projection"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "list", "ls":
		cmdList()
	case "render":
		cmdRender(args)
	case "stats":
		cmdStats(args)
	case "export":
		cmdExport(args)
	case "convert":
		cmdConvert(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`meshrender - procedural mesh software renderer

Usage:
  meshrender <command> [options]

Commands:
  list                               List available scenes
  render [-scene name] [-o file] [-fit] [-turn deg]
                                     Render a scene to PNG or BMP
  stats  [-scene name]               Print mesh and rasterizer statistics
  export [-scene name] [-o file]     Write a scene's mesh as binary STL
  convert -positions f -indices f    Convert packed float3 buffers to STL

Common options:
  -config file   Config file (default ./config.yaml or user config dir)
  -width N       Output width
  -height N      Output height
  -normals       Draw fragment normals
  -wireframe     Stroke outlines instead of filling
  -debug         Debug logging

Examples:
  meshrender render -scene revolve -o revolve.png
  meshrender render -scene sdf -wireframe -o sdf.bmp
  meshrender export -scene extrusion -o star.stl`)
}

// setup parses a subcommand's flags, loads the config and starts logging.
func setup(fs *flag.FlagSet, args []string) *config.Config {
	var f config.Flags
	f.Register(fs)
	fs.Parse(args)

	cfg, err := config.Load(&f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("config: %+v", cfg)
	return cfg
}

func buildScene(cfg *config.Config) *scene.Scene {
	sc, err := scene.New(cfg.Scene.Name, cfg.Scene.Segments)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}
	sc.Validate(logger.Named("scene"))
	return sc
}

func cmdList() {
	for _, name := range scene.Names() {
		fmt.Printf("  %-10s %s\n", name, scene.Describe(name))
	}
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	out := fs.String("o", "frame.png", "Output file (.png or .bmp)")
	fit := fs.Bool("fit", false, "Frame the scene bounds instead of using the configured distance")
	turn := fs.Float64("turn", 0, "Turn the scene about the Y axis (degrees)")
	cfg := setup(fs, args)
	sc := buildScene(cfg)

	r, err := render.New(cfg, logger.Named("render"))
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	if *fit {
		r.Camera.FitToBox(sc.Bounds())
	}
	if *turn != 0 {
		r.Spin(camera.Radians(float32(*turn)))
	}

	canvas := surface.New(cfg.Render.Width, cfg.Render.Height, logger.Named("surface"))
	defer canvas.Close()

	stats, err := r.Draw(canvas, sc)
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
	if err := canvas.Save(*out); err != nil {
		logger.Error("failed to save frame", zap.String("path", *out), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("%s: %d submitted, %d drawn, %d culled, %d clipped -> %s\n",
		sc.Name, stats.Submitted, stats.Drawn, stats.Culled, stats.Clipped, *out)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	cfg := setup(fs, args)
	sc := buildScene(cfg)

	m := sc.Mesh()
	b := m.BoundingBox()
	fmt.Printf("Scene:     %s (%s)\n", sc.Name, scene.Describe(sc.Name))
	fmt.Printf("Parts:     %d\n", len(sc.Parts))
	fmt.Printf("Vertices:  %d\n", len(m.Vertices))
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	if err := mesh.Validate(m); err != nil {
		fmt.Printf("Valid:     no (%v)\n", err)
	} else {
		fmt.Println("Valid:     yes")
	}

	r, err := render.New(cfg, logger.Named("render"))
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	var rec recorder
	rec.size = projection.Size{Width: float32(cfg.Render.Width), Height: float32(cfg.Render.Height)}
	stats, _ := r.Draw(&rec, sc)
	fmt.Println()
	fmt.Println("Rasterizer pass:")
	fmt.Printf("  submitted %d\n", stats.Submitted)
	fmt.Printf("  clipped   %d\n", stats.Clipped)
	fmt.Printf("  culled    %d\n", stats.Culled)
	fmt.Printf("  drawn     %d\n", stats.Drawn)
	for _, k := range []projection.DrawKind{projection.DrawFill, projection.DrawStroke, projection.DrawLine} {
		fmt.Printf("  %-9s %d calls\n", k, rec.Count(k))
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("o", "mesh.stl", "Output STL file")
	cfg := setup(fs, args)
	sc := buildScene(cfg)

	soup := meshio.ToSoup(sc.Mesh())
	if err := (meshio.STL{}).Export(*out, soup); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("mesh exported",
		zap.String("scene", sc.Name),
		zap.Int("triangles", soup.Triangles()),
		zap.String("path", *out),
	)
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	positions := fs.String("positions", "", "Packed little-endian float32 vertex buffer")
	indices := fs.String("indices", "", "Packed little-endian uint32 index buffer")
	stride := fs.Int("stride", 12, "Bytes between consecutive vertices")
	offset := fs.Int("offset", 0, "Byte offset of the position within a vertex")
	out := fs.String("o", "mesh.stl", "Output STL file")
	setup(fs, args)

	if *positions == "" || *indices == "" {
		fmt.Fprintln(os.Stderr, "Usage: meshrender convert -positions file -indices file [-stride N] [-offset N] [-o out.stl]")
		os.Exit(1)
	}

	vbuf, err := os.ReadFile(*positions)
	if err != nil {
		logger.Error("failed to read positions", zap.Error(err))
		os.Exit(1)
	}
	ibuf, err := os.ReadFile(*indices)
	if err != nil {
		logger.Error("failed to read indices", zap.Error(err))
		os.Exit(1)
	}

	l := meshio.Layout{Stride: *stride, Offset: *offset}
	count := 0
	if *stride > 0 && len(vbuf) >= *offset+12 {
		count = (len(vbuf)-*offset-12) / *stride + 1
	}
	m, err := meshio.Import(vbuf, count, l, ibuf)
	if err != nil {
		logger.Error("import failed", zap.Error(err))
		os.Exit(1)
	}
	if err := m.CheckIndices(); err != nil {
		logger.Warn("imported mesh has bad indices", zap.Error(err))
	}

	soup := meshio.ToSoup(m)
	if err := (meshio.STL{}).Export(*out, soup); err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("%d vertices, %d triangles -> %s\n", len(m.Vertices), soup.Triangles(), *out)
}

// recorder counts draw calls without producing pixels.
type recorder struct {
	projection.Recorder
	size projection.Size
}

func (r *recorder) Clear(projection.Color) {}
func (r *recorder) Size() projection.Size { return r.size }
