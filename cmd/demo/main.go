package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GBraga29/ProjetoPG/internal/app"
	"github.com/GBraga29/ProjetoPG/internal/config"
	"github.com/GBraga29/ProjetoPG/internal/controls"
	"github.com/GBraga29/ProjetoPG/internal/debug"
	"github.com/GBraga29/ProjetoPG/internal/graphics"
	"github.com/GBraga29/ProjetoPG/internal/input"
	"github.com/GBraga29/ProjetoPG/internal/logger"
	"github.com/GBraga29/ProjetoPG/internal/render"
	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/shader"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	variant := flag.String("variant", "", "scene variant: classic or shader (overrides config)")
	flag.Parse()

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfg, err := config.Load(*configPath)
	if *variant != "" {
		cfg.Variant = scene.Variant(*variant)
		if err == nil {
			err = cfg.Validate()
		}
	}

	var echo io.Writer
	if cfg.Log.Echo {
		echo = os.Stderr
	}
	log := logger.New(cfg.Log.Path, echo)
	if err != nil {
		log.Log(err.Error())
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Log(err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	// Validate has already accepted both keys.
	toggle, _ := input.ParseKey(cfg.Keys.ToggleCamera)
	cycle, _ := input.ParseKey(cfg.Keys.CycleColor)

	var pair *shader.Pair
	if cfg.Variant == scene.VariantShader {
		timeout := cfg.Shaders.Timeout
		if timeout <= 0 {
			timeout = shader.DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		p := shader.Resolve(ctx, cfg.Shaders.Source, log)
		cancel()
		pair = &p
	}

	a, err := app.New(app.Config{
		Variant:         cfg.Variant,
		CheckerSize:     cfg.Textures.Checkerboard,
		GradientSize:    cfg.Textures.Gradient,
		Shader:          pair,
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		ToggleCameraKey: toggle,
		CycleColorKey:   cycle,
	}, log)
	if err != nil {
		return err
	}
	log.Logf("scene ready: variant %s, %d objects", a.Scene.Variant, len(a.Scene.Objects()))

	var reloads <-chan shader.Pair
	if cfg.Variant == scene.VariantShader && cfg.Shaders.Watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if reloads, err = shader.Watch(ctx, cfg.Shaders.Source, log); err != nil {
			log.Log(err.Error())
		}
	}

	renderer := render.New(log)
	hud := debug.New()
	hud.ShowFPS = cfg.Debug.ShowFPS
	hud.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	hud.ShowHelp = cfg.Debug.ShowHelp
	hud.ShowLog = cfg.Debug.ShowLog

	graphics.Run(graphics.Window{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		TargetFPS:  cfg.Window.TargetFPS,
		Fullscreen: cfg.Window.Fullscreen,
		Background: a.Scene.Background.ToRGBA(),
	}, graphics.Loop{
		Resize: a.Resize,
		Update: func() {
			select {
			case p, ok := <-reloads:
				if !ok {
					reloads = nil
					break
				}
				a.ReloadShader(p)
			default:
			}
			for _, k := range a.Input.Keys() {
				if rl.IsKeyPressed(int32(k)) {
					a.HandleKey(k)
				}
			}
			a.Frame(graphics.Clock{}, pointer())
		},
		Draw: func() {
			renderer.Draw(a.Scene, a.ActiveCamera())
			hud.Draw(a, log)
		},
		Close: renderer.Close,
	})
	log.Log("window closed")
	return nil
}

// pointer reads this frame's orbit input: left-drag rotates, the wheel zooms.
func pointer() controls.Input {
	var in controls.Input
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		in.RotateDX, in.RotateDY = d.X, d.Y
	}
	in.Wheel = rl.GetMouseWheelMove()
	in.ViewportHeight = rl.GetScreenHeight()
	return in
}
