package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GBraga29/ProjetoPG/internal/camera"
	"github.com/GBraga29/ProjetoPG/internal/controls"
	"github.com/GBraga29/ProjetoPG/internal/input"
	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/shader"
	"github.com/GBraga29/ProjetoPG/internal/texture"
)

type memLog struct{ lines []string }

func (m *memLog) Log(line string)                 { m.lines = append(m.lines, line) }
func (m *memLog) Logf(format string, args ...any) { m.Log(fmt.Sprintf(format, args...)) }

type fixedClock float32

func (c fixedClock) Elapsed() float32 { return float32(c) }

func newApp(t *testing.T, cfg Config) (*App, *memLog) {
	t.Helper()
	if cfg.Width == 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	log := &memLog{}
	a, err := New(cfg, log)
	require.NoError(t, err)
	return a, log
}

func TestKeysDriveStateTransitions(t *testing.T) {
	a, log := newApp(t, Config{})

	assert.True(t, a.HandleKey(input.KeyC))
	assert.Equal(t, camera.Orthographic, a.ActiveCamera().Kind)
	assert.Same(t, a.ActiveCamera(), a.Controls.Camera())

	assert.True(t, a.HandleKey(input.KeyV))
	assert.Equal(t, scene.Color(0x00ff00), a.Scene.Cube.Material.Color)

	assert.False(t, a.HandleKey(input.Key('Q')))

	assert.True(t, a.HandleKey(input.KeyC))
	assert.Equal(t, camera.Perspective, a.ActiveCamera().Kind)

	assert.Equal(t, []string{
		"camera switched to: orthographic",
		"cube color changed to: 00ff00",
		"camera switched to: perspective",
	}, log.lines)
}

func TestCustomKeyBindings(t *testing.T) {
	a, _ := newApp(t, Config{ToggleCameraKey: input.Key('P'), CycleColorKey: input.Key('K')})
	assert.False(t, a.HandleKey(input.KeyC))
	assert.True(t, a.HandleKey(input.Key('P')))
	assert.Equal(t, camera.Orthographic, a.ActiveCamera().Kind)
	assert.True(t, a.HandleKey(input.Key('K')))
	assert.Equal(t, scene.Color(0x00ff00), a.Scene.CubeColor())

	_, err := New(Config{ToggleCameraKey: input.KeyV}, nil)
	assert.Error(t, err)
}

func TestFullColorCycleRestoresCube(t *testing.T) {
	a, _ := newApp(t, Config{})
	start := a.Scene.Cube.Material.Color
	for i := 0; i < len(scene.CubePalette); i++ {
		a.HandleKey(input.KeyV)
	}
	assert.Equal(t, start, a.Scene.Cube.Material.Color)
}

func TestFrameAnimatesFromClock(t *testing.T) {
	a, _ := newApp(t, Config{})
	a.Frame(fixedClock(0), controls.Input{})
	assert.Equal(t, float32(-0.5), a.Scene.Sphere.Transform.Position.Y)
	assert.Equal(t, float32(0), a.Elapsed())

	a.Frame(fixedClock(2), controls.Input{})
	assert.Equal(t, float32(2), a.Elapsed())
	assert.Equal(t, float32(2), a.Scene.Sphere.Transform.Rotation.Y)
}

func TestResize(t *testing.T) {
	a, _ := newApp(t, Config{})
	a.Resize(1000, 500)
	assert.Equal(t, float32(2), a.Cameras.Get(camera.Perspective).Aspect)
	assert.Equal(t, float32(10), a.Cameras.Get(camera.Orthographic).Right)
	a.Resize(0, 0)
	assert.Equal(t, float32(2), a.Cameras.Get(camera.Perspective).Aspect)
}

func TestShaderVariant(t *testing.T) {
	pair := shader.Inline()
	a, _ := newApp(t, Config{Variant: scene.VariantShader, Shader: &pair})
	a.Step(3, controls.Input{})
	assert.Equal(t, []float32{3}, a.Scene.Cube.Material.Uniforms[scene.UniformTime])
	assert.Nil(t, a.Scene.Prism)

	a.HandleKey(input.KeyV)
	assert.Equal(t, []float32{0, 1, 0}, a.Scene.Cube.Material.Uniforms[scene.UniformBaseColor])
}

func TestBuildErrorsPropagate(t *testing.T) {
	_, err := New(Config{CheckerSize: -1, Width: 10, Height: 10}, nil)
	assert.ErrorIs(t, err, texture.ErrInvalidDimension)
}

func TestOrbitInputMovesActiveCamera(t *testing.T) {
	a, _ := newApp(t, Config{})
	before := a.ActiveCamera().Position
	a.Step(0, controls.Input{RotateDX: 200})
	assert.NotEqual(t, before, a.ActiveCamera().Position)
	// The inactive camera is untouched.
	assert.Equal(t, float32(5), a.Cameras.Get(camera.Orthographic).Position.X)
}

func TestStatusAndHelp(t *testing.T) {
	a, _ := newApp(t, Config{})
	assert.Equal(t, []string{"Camera: perspective", "Cube color: #ff8000"}, a.Status())
	a.HandleKey(input.KeyC)
	assert.Equal(t, "Camera: orthographic", a.Status()[0])

	assert.Equal(t, []string{
		"C: toggle perspective/orthographic camera",
		"V: cycle cube color",
		"Mouse: orbit / zoom",
	}, a.Help())
}

func TestReloadShader(t *testing.T) {
	pair := shader.Inline()
	a, log := newApp(t, Config{Variant: scene.VariantShader, Shader: &pair})
	a.ReloadShader(shader.Pair{Vertex: "v", Fragment: "f", Origin: "assets/shaders"})
	assert.Equal(t, "f", a.Scene.Cube.Material.Shader.Fragment)
	assert.Equal(t, []string{"shaders reloaded from assets/shaders"}, log.lines)

	classic, log := newApp(t, Config{})
	classic.ReloadShader(pair)
	assert.Nil(t, classic.Scene.Cube.Material.Shader)
	assert.Empty(t, log.lines)
}
