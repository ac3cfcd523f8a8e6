package app

import (
	"fmt"

	"github.com/GBraga29/ProjetoPG/internal/animation"
	"github.com/GBraga29/ProjetoPG/internal/camera"
	"github.com/GBraga29/ProjetoPG/internal/controls"
	"github.com/GBraga29/ProjetoPG/internal/input"
	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/shader"
)

// Clock is a monotonic elapsed-time source, sampled once per frame.
type Clock interface {
	Elapsed() float32
}

// Logger is the app's view of the logger.
type Logger interface {
	Log(line string)
	Logf(format string, args ...any)
}

// Config is what New needs to assemble the demo.
type Config struct {
	Variant         scene.Variant
	CheckerSize     int
	GradientSize    int
	Shader          *shader.Pair // required for scene.VariantShader
	Width, Height   int
	ToggleCameraKey input.Key
	CycleColorKey   input.Key
}

// App ties the scene, cameras, orbit controller and key bindings together. All of its
// methods run on the frame-loop goroutine.
type App struct {
	Scene    *scene.Scene
	Cameras  *camera.Manager
	Controls *controls.Orbit
	Input    *input.Handler

	log     Logger
	elapsed float32
	width   int
	height  int
}

// New builds the scene and binds the camera and color keys. The shader pair must already
// be resolved: construction never waits on I/O.
func New(cfg Config, log Logger) (*App, error) {
	s, err := scene.Build(scene.Options{
		Variant:      cfg.Variant,
		CheckerSize:  cfg.CheckerSize,
		GradientSize: cfg.GradientSize,
		Shader:       cfg.Shader,
	})
	if err != nil {
		return nil, err
	}
	if cfg.ToggleCameraKey == 0 {
		cfg.ToggleCameraKey = input.KeyC
	}
	if cfg.CycleColorKey == 0 {
		cfg.CycleColorKey = input.KeyV
	}

	a := &App{
		Scene:   s,
		Cameras: camera.NewManager(cfg.Width, cfg.Height),
		Input:   input.NewHandler(),
		log:     log,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	a.Controls = controls.NewOrbit(a.Cameras.Active())
	a.Cameras.OnChange(a.Controls.Attach)

	if err := a.Input.Bind(cfg.ToggleCameraKey, input.ToggleCamera, a.ToggleCamera); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if err := a.Input.Bind(cfg.CycleColorKey, input.CycleColor, a.CycleColor); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return a, nil
}

// ToggleCamera swaps the active camera; the orbit controller follows it.
func (a *App) ToggleCamera() {
	cam := a.Cameras.Toggle()
	a.Controls.Update(controls.Input{ViewportHeight: a.height})
	a.logf("camera switched to: %s", cam.Kind)
}

// CycleColor advances the cube color.
func (a *App) CycleColor() {
	c := a.Scene.CycleCubeColor()
	a.logf("cube color changed to: %s", c.Hex())
}

// ReloadShader puts p on the shader cube. It is a no-op in the classic variant.
func (a *App) ReloadShader(p shader.Pair) {
	if a.Scene.SetCubeShader(&p) {
		a.logf("shaders reloaded from %s", p.Origin)
	}
}

// HandleKey dispatches a pressed key. It reports whether the key was bound.
func (a *App) HandleKey(k input.Key) bool {
	return a.Input.Handle(k)
}

// Resize updates both camera projections for the new viewport.
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.width, a.height = width, height
	a.Cameras.Resize(width, height)
}

// Step advances to elapsed time t: objects are animated from t, then the orbit
// controller applies this frame's pointer input to the active camera.
func (a *App) Step(t float32, in controls.Input) {
	a.elapsed = t
	animation.Update(a.Scene, t)
	if in.ViewportHeight == 0 {
		in.ViewportHeight = a.height
	}
	a.Controls.Update(in)
}

// Frame samples clock once and steps.
func (a *App) Frame(clock Clock, in controls.Input) {
	a.Step(clock.Elapsed(), in)
}

// Elapsed returns the time of the last Step.
func (a *App) Elapsed() float32 { return a.elapsed }

// ActiveCamera returns the camera to render with.
func (a *App) ActiveCamera() *camera.Camera { return a.Cameras.Active() }

func (a *App) logf(format string, args ...any) {
	if a.log != nil {
		a.log.Logf(format, args...)
	}
}

// Status returns the HUD lines describing the current state.
func (a *App) Status() []string {
	lines := []string{
		"Camera: " + a.Cameras.ActiveKind().String(),
		"Cube color: #" + a.Scene.CubeColor().Hex(),
	}
	if a.Scene.Variant == scene.VariantShader {
		lines = append(lines, fmt.Sprintf("Time: %.1fs", a.elapsed))
	}
	return lines
}

// Help returns one line per key binding, in key order.
func (a *App) Help() []string {
	keys := a.Input.Keys()
	lines := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		action, _ := a.Input.ActionFor(k)
		lines = append(lines, fmt.Sprintf("%s: %s", k, helpText[action]))
	}
	return append(lines, "Mouse: orbit / zoom")
}

var helpText = map[input.Action]string{
	input.ToggleCamera: "toggle perspective/orthographic camera",
	input.CycleColor:   "cycle cube color",
}
