package animation

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GBraga29/ProjetoPG/internal/geom"
	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/shader"
)

func classic(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.Build(scene.Options{})
	require.NoError(t, err)
	return s
}

func shaderScene(t *testing.T) *scene.Scene {
	t.Helper()
	pair := shader.Inline()
	s, err := scene.Build(scene.Options{Variant: scene.VariantShader, Shader: &pair})
	require.NoError(t, err)
	return s
}

func TestUpdateAtZero(t *testing.T) {
	s := classic(t)
	Update(s, 0)
	assert.Equal(t, float32(-0.5), s.Sphere.Transform.Position.Y)
	assert.Equal(t, float32(0), s.Sphere.Transform.Rotation.Y)
	assert.Equal(t, float32(0), s.Plane.Transform.Rotation.Z)
	assert.Equal(t, float32(1.5), s.Prism.Transform.Position.Y)
	assert.Equal(t, geom.V(1, 1, 1), s.Prism.Transform.Scale)
}

func TestPlaneWobbleAtPiOverSix(t *testing.T) {
	s := classic(t)
	tm := float32(math32.Pi / 6)
	Update(s, tm)
	assert.InDelta(t, math32.Sin(0.3*tm)*0.1, s.Plane.Transform.Rotation.Z, 1e-7)
	assert.InDelta(t, 0.0157, s.Plane.Transform.Rotation.Z, 1e-4)
	// The plane stays flat on X.
	assert.InDelta(t, -math32.Pi/2, s.Plane.Transform.Rotation.X, 1e-6)
}

func TestSphereStaysAbovePlane(t *testing.T) {
	s := classic(t)
	for i := 0; i <= 20000; i++ {
		tm := float32(i) * 0.0137
		Update(s, tm)
		y := s.Sphere.Transform.Position.Y
		require.GreaterOrEqual(t, y, float32(-0.5), "t=%v", tm)
		require.LessOrEqual(t, y, float32(1.0), "t=%v", tm)
	}
	// Peak of |sin(3t)| at t = π/6.
	Update(s, math32.Pi/6)
	assert.InDelta(t, 1.0, s.Sphere.Transform.Position.Y, 1e-5)
}

func TestPrismFormulas(t *testing.T) {
	s := classic(t)
	tm := float32(2.5)
	Update(s, tm)
	p := s.Prism.Transform
	assert.InDelta(t, tm*0.5, p.Rotation.X, 1e-6)
	assert.InDelta(t, tm*0.8, p.Rotation.Y, 1e-6)
	assert.InDelta(t, tm*0.3, p.Rotation.Z, 1e-6)
	assert.InDelta(t, 1.5+math32.Sin(tm*2)*0.3, p.Position.Y, 1e-6)
	scale := 1 + math32.Sin(tm*3)*0.1
	assert.InDelta(t, scale, p.Scale.X, 1e-6)
	assert.Equal(t, p.Scale.X, p.Scale.Y)
	assert.Equal(t, p.Scale.X, p.Scale.Z)
	// X/Z placement is not animated.
	assert.Equal(t, float32(0), p.Position.X)
	assert.Equal(t, float32(0), p.Position.Z)
}

func TestUpdateIsReproducible(t *testing.T) {
	times := []float32{0, 0.016, 1, math32.Pi / 6, 12.75, 1000.5}
	for _, tm := range times {
		a, b := classic(t), classic(t)
		Update(a, tm)
		Update(b, tm)
		assertSameTransforms(t, a, b)

		// Re-evaluating after other times lands on the same transforms: nothing accumulates.
		Update(b, tm+3)
		Update(b, tm)
		assertSameTransforms(t, a, b)
	}
}

func assertSameTransforms(t *testing.T, a, b *scene.Scene) {
	t.Helper()
	oa, ob := a.Objects(), b.Objects()
	require.Equal(t, len(oa), len(ob))
	for i := range oa {
		assert.Equal(t, oa[i].Transform, ob[i].Transform, oa[i].Kind.String())
	}
}

func TestClassicCubeIsStatic(t *testing.T) {
	s := classic(t)
	before := s.Cube.Transform
	Update(s, 7.3)
	assert.Equal(t, before, s.Cube.Transform)
	assert.Nil(t, s.Cube.Material.Uniforms)
}

func TestShaderCubeSpinsAndPushesTime(t *testing.T) {
	s := shaderScene(t)
	Update(s, 4)
	assert.InDelta(t, 2.0, s.Cube.Transform.Rotation.X, 1e-6)
	assert.InDelta(t, 2.8, s.Cube.Transform.Rotation.Y, 1e-6)
	assert.Equal(t, []float32{4}, s.Cube.Material.Uniforms[scene.UniformTime])
	assert.Nil(t, s.Prism)

	Update(s, 5)
	assert.Equal(t, []float32{5}, s.Cube.Material.Uniforms[scene.UniformTime])
}

func TestUpdateSkipsMissingObjects(t *testing.T) {
	s := &scene.Scene{}
	assert.NotPanics(t, func() { Update(s, 1) })
}
