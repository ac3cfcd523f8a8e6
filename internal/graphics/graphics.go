package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window configures the OS window.
type Window struct {
	Width, Height int
	Title         string
	TargetFPS     int
	Fullscreen    bool
	Background    color.RGBA
}

// Loop is called by Run. Resize fires before Update in a frame where the window changed size.
type Loop struct {
	Init   func()         // after the window and GL context exist
	Resize func(w, h int) // optional
	Update func()         // input, animation
	Draw   func()         // between BeginDrawing and EndDrawing, after clear
	Close  func()         // before the window closes; release GPU resources
}

// Clock reports seconds since the window opened, from raylib's monotonic timer.
type Clock struct{}

// Elapsed implements app.Clock.
func (Clock) Elapsed() float32 { return float32(rl.GetTime()) }

// Run opens a resizable window, then calls the loop hooks once per frame until the window
// is closed. It must run on the main goroutine.
func Run(win Window, loop Loop) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := int32(win.Width), int32(win.Height)
	if win.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()

	if win.TargetFPS > 0 {
		rl.SetTargetFPS(int32(win.TargetFPS))
	}
	bg := rl.NewColor(win.Background.R, win.Background.G, win.Background.B, 255)

	if loop.Init != nil {
		loop.Init()
	}
	if loop.Close != nil {
		defer loop.Close()
	}
	if loop.Resize != nil {
		loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	for !rl.WindowShouldClose() {
		if loop.Resize != nil && rl.IsWindowResized() {
			loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if loop.Update != nil {
			loop.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
}
