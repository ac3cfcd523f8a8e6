package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	// logLines is how many recent log lines the overlay shows.
	logLines = 4
)

// Source supplies the text the overlay shows each frame.
type Source interface {
	Status() []string
	Help() []string
}

// LogTail returns the last n log lines, oldest first.
type LogTail interface {
	Last(n int) []string
}

// Debug draws the on-screen overlays: FPS and heap at the top-right, scene status and key
// help at the top-left, recent log lines at the bottom-left.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHelp     bool
	ShowLog      bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all optional overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call after the 3D pass.
func (d *Debug) Draw(src Source, tail LogTail) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y, rl.Green)
	}

	if src != nil {
		y = padding
		for _, line := range src.Status() {
			rl.DrawText(line, padding, y, fontSize, rl.RayWhite)
			y += lineHeight
		}
		if d.ShowHelp {
			y += lineHeight / 2
			for _, line := range src.Help() {
				rl.DrawText(line, padding, y, fontSize-4, rl.LightGray)
				y += lineHeight - 4
			}
		}
	}

	if d.ShowLog && tail != nil {
		lines := tail.Last(logLines)
		y = screenH - padding - int32(len(lines))*(lineHeight-4)
		for _, line := range lines {
			rl.DrawText(line, padding, y, fontSize-4, rl.Gray)
			y += lineHeight - 4
		}
	}
}

func drawRight(text string, screenW, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
