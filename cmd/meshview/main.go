// meshview shows the demo scenes in an SDL2 window, rasterized in software.
package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/projection/internal/config"
	"github.com/Faultbox/projection/internal/input"
	"github.com/Faultbox/projection/internal/logger"
	"github.com/Faultbox/projection/internal/render"
	"github.com/Faultbox/projection/internal/scene"
	"github.com/Faultbox/projection/internal/surface"
	"github.com/Faultbox/projection/internal/window"
	"github.com/Faultbox/projection/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load(config.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("config: %+v", cfg)

	v, err := newViewer(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

type viewer struct {
	cfg      *config.Config
	win      *window.Window
	in       *input.Input
	renderer *render.Renderer
	canvas   *surface.GG
	scene    *scene.Scene
	names    []string
	spinning bool
	log      *zap.Logger
}

// spinRate is the model turn speed in radians per second.
const spinRate = 0.8

func newViewer(cfg *config.Config) (*viewer, error) {
	win, err := window.New(window.Config{
		Title:  "meshview",
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		VSync:  true,
	}, logger.Named("window"))
	if err != nil {
		return nil, err
	}

	r, err := render.New(cfg, logger.Named("render"))
	if err != nil {
		win.Close()
		return nil, err
	}

	v := &viewer{
		cfg:      cfg,
		win:      win,
		in:       input.New(),
		renderer: r,
		names:    scene.Names(),
		log:      logger.Named("viewer"),
	}
	if err := v.load(cfg.Scene.Name); err != nil {
		win.Close()
		return nil, err
	}
	v.resize(cfg.Render.Width, cfg.Render.Height)
	return v, nil
}

func (v *viewer) load(name string) error {
	sc, err := scene.New(name, v.cfg.Scene.Segments)
	if err != nil {
		return err
	}
	sc.Validate(v.log)
	v.scene = sc
	v.log.Info("scene loaded",
		zap.String("scene", name),
		zap.Int("triangles", sc.Mesh().TriangleCount()),
	)
	return nil
}

func (v *viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if v.canvas != nil {
		v.canvas.Close()
	}
	v.canvas = surface.New(width, height, logger.Named("surface"))
}

// Run loops until the window closes.
func (v *viewer) Run() error {
	last := time.Now()
	for {
		if v.in.Update() {
			return nil
		}
		if err := v.handle(); err != nil {
			return err
		}

		stats, err := v.renderer.Draw(v.canvas, v.scene)
		if err != nil {
			v.log.Warn("frame incomplete", zap.Error(err))
		}
		if err := v.win.Present(v.canvas.Image()); err != nil {
			return err
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		fps := 1 / dt
		last = now
		if v.spinning {
			v.renderer.Spin(float32(dt * spinRate))
		}
		v.win.SetTitle(fmt.Sprintf("meshview - %s - %d/%d fragments - %.0f fps",
			v.scene.Name, stats.Drawn, stats.Submitted, fps))
	}
}

func (v *viewer) handle() error {
	cam := v.renderer.Camera
	opts := &v.renderer.Options
	for _, e := range v.in.Events() {
		switch e.Type {
		case input.EventWindowResize:
			v.resize(e.Width, e.Height)
		case input.EventDrag:
			cam.HandleDrag(e.DX, e.DY)
		case input.EventWheel:
			cam.HandleZoom(e.DY)
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_TAB:
				i := slices.Index(v.names, v.scene.Name)
				if err := v.load(v.names[(i+1)%len(v.names)]); err != nil {
					return err
				}
			case sdl.SCANCODE_F:
				opts.Fill = !opts.Fill
			case sdl.SCANCODE_L:
				opts.Stroke = !opts.Stroke
			case sdl.SCANCODE_N:
				opts.DrawNormals = !opts.DrawNormals
			case sdl.SCANCODE_S:
				opts.ShadeWithNormals = !opts.ShadeWithNormals
			case sdl.SCANCODE_C:
				opts.BackfaceCulling = !opts.BackfaceCulling
			case sdl.SCANCODE_O:
				cam.Orthographic = !cam.Orthographic
			case sdl.SCANCODE_B:
				cam.FitToBox(v.scene.Bounds())
			case sdl.SCANCODE_P:
				path, err := v.canvas.Screenshot("screenshots", v.scene.Name)
				if err != nil {
					v.log.Error("screenshot failed", zap.Error(err))
				} else {
					v.log.Info("screenshot saved", zap.String("path", path))
				}
			case sdl.SCANCODE_SPACE:
				v.spinning = !v.spinning
			case sdl.SCANCODE_R:
				v.renderer.Camera = render.CameraFrom(v.cfg)
				v.renderer.Model = math.QuatIdentity()
				cam = v.renderer.Camera
			}
		}
	}

	var forward, right, up float32
	if input.IsKeyHeld(sdl.SCANCODE_UP) {
		forward++
	}
	if input.IsKeyHeld(sdl.SCANCODE_DOWN) {
		forward--
	}
	if input.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		right++
	}
	if input.IsKeyHeld(sdl.SCANCODE_LEFT) {
		right--
	}
	if input.IsKeyHeld(sdl.SCANCODE_PAGEUP) {
		up++
	}
	if input.IsKeyHeld(sdl.SCANCODE_PAGEDOWN) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		cam.HandleMovement(forward, right, up)
	}
	return nil
}

func (v *viewer) Close() {
	if v.canvas != nil {
		v.canvas.Close()
	}
	v.win.Close()
}
